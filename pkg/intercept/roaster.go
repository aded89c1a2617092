package intercept

import (
	"log/slog"
	"os"

	"github.com/utkarsh5026/coderoast/pkg/common/err"
	"github.com/utkarsh5026/coderoast/pkg/common/logger"
	"github.com/utkarsh5026/coderoast/pkg/roast"
)

// roaster is what the hook and wrapper share: pick an insult for a
// failure and emit it without ever letting a fault escape.
type roaster struct {
	engine  *roast.Engine
	emitter Emitter
	log     *slog.Logger
}

func newRoaster(engine *roast.Engine, emitter Emitter, log *slog.Logger) roaster {
	if engine == nil {
		engine = roast.New()
	}
	if emitter == nil {
		emitter = NewWriterEmitter(os.Stderr)
	}
	return roaster{engine: engine, emitter: emitter, log: logger.OrDefault(log)}
}

func (r roaster) active() bool {
	return r.engine.IsActive()
}

// roast emits an insult for failure. It never panics and never returns
// an error.
func (r roaster) roast(failure any, panicked bool, site *CallSite) {
	defer func() {
		if v := recover(); v != nil {
			r.log.Debug("roast emission panicked", "panic", v)
		}
	}()

	rst, pickErr := r.engine.InsultFor(failure)
	if pickErr != nil {
		r.log.Debug("no insult available", "error", pickErr,
			"package", err.GetPackage(pickErr), "code", err.GetCode(pickErr), "op", err.GetOp(pickErr))
		return
	}

	ev := Event{Roast: rst, Failure: failure, Panicked: panicked, Site: site}
	if emitErr := r.emitter.Emit(ev); emitErr != nil {
		r.log.Debug("roast emission failed", "error", emitErr)
	}
}
