package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/coderoast/pkg/coderoast"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

func main() {
	defer coderoast.Recover()

	if err := newRootCmd(&app{}).Execute(); err != nil {
		coderoast.Exit(err)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "coderoast",
		Short:         "CodeRoast - humorous insults for your failures",
		Long:          getBanner(),
		Version:       fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "text", "Log format (text, json, pretty)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")
	flags.StringVar(&a.roastLevel, "roast-level", "", "Roast level for this run (mild, medium, brutal)")
	flags.BoolVar(&a.noRoast, "no-roast", false, "Disable roasting for this run")

	rootCmd.AddCommand(newInsultCmd(a))
	rootCmd.AddCommand(newCategoriesCmd(a))
	rootCmd.AddCommand(newClassifyCmd(a))
	rootCmd.AddCommand(newLevelCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func getBanner() string {
	return `
╔══════════════════════════════════════════════════════════════╗
║                                                              ║
║    ██████╗ ██████╗ ██████╗ ███████╗                          ║
║   ██╔════╝██╔═══██╗██╔══██╗██╔════╝                          ║
║   ██║     ██║   ██║██║  ██║█████╗                            ║
║   ██║     ██║   ██║██║  ██║██╔══╝                            ║
║   ╚██████╗╚██████╔╝██████╔╝███████╗                          ║
║    ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝                          ║
║                                                              ║
║   ██████╗  ██████╗  █████╗ ███████╗████████╗                 ║
║   ██╔══██╗██╔═══██╗██╔══██╗██╔════╝╚══██╔══╝                 ║
║   ██████╔╝██║   ██║███████║███████╗   ██║                    ║
║   ██╔══██╗██║   ██║██╔══██║╚════██║   ██║                    ║
║   ██║  ██║╚██████╔╝██║  ██║███████║   ██║                    ║
║   ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝   ╚═╝                    ║
║                                                              ║
╚══════════════════════════════════════════════════════════════╝

  🔥 Your errors, roasted.

  Get insulted:       coderoast insult
  Pick the heat:      coderoast insult --level brutal
  See it in action:   coderoast demo
  Need help? Run:     coderoast --help

`
}
