// Package intercept observes failures and roasts them on their way out.
//
// Two mechanisms are provided:
//
//   - Hook: a top-level failure reporter. Defer Hook.Recover at the top of
//     main or a goroutine to roast panics, and pass errors returned out of
//     main to Hook.Exit. Installed reporters chain to the one installed
//     before them and finally to the base behaviour: re-panic with the
//     original value, or print "Error: ..." and exit with status 1.
//
//   - Wrapper: wraps a function so that a returned error or a panic is
//     roasted and then handed back unchanged. A level wrapper runs the
//     function under a temporary roast level.
//
// Both consult roast.Engine.IsActive; when the engine is inactive the
// failure passes through untouched. Faults raised while roasting are
// recovered and logged at debug level so they never mask the real failure.
package intercept
