package intercept

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/utkarsh5026/coderoast/pkg/roast"
)

// Event is one roasted failure.
type Event struct {
	Roast roast.Roast

	// Failure is the error returned or the value panicked with.
	Failure any

	// Panicked is true when Failure was recovered from a panic.
	Panicked bool

	// Site is where the panic was raised. Nil for returned errors or when
	// it could not be determined.
	Site *CallSite
}

// Emitter writes a roast somewhere. Errors are logged by the caller and
// otherwise ignored.
type Emitter interface {
	Emit(ev Event) error
}

// EmitterFunc adapts a plain function to the Emitter interface.
type EmitterFunc func(ev Event) error

// Emit calls f(ev).
func (f EmitterFunc) Emit(ev Event) error {
	return f(ev)
}

// Color modes accepted by WithColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// WriterEmitter renders roasts as text on an io.Writer. Styling goes
// through a lipgloss renderer bound to the writer, so output that isn't a
// terminal comes out plain unless colour is forced.
type WriterEmitter struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *lipgloss.Renderer
	callSite bool
	snippet  bool

	badge lipgloss.Style
	text  lipgloss.Style
	tag   lipgloss.Style
	dim   lipgloss.Style
}

// EmitterOption configures a WriterEmitter
type EmitterOption func(*WriterEmitter)

// WithCallSite toggles the "at pkg.Func (file:line)" line for panics.
func WithCallSite(on bool) EmitterOption {
	return func(e *WriterEmitter) {
		e.callSite = on
	}
}

// WithSnippet toggles the highlighted source line for panics.
func WithSnippet(on bool) EmitterOption {
	return func(e *WriterEmitter) {
		e.snippet = on
	}
}

// WithColor forces colour on or off. "auto" leaves detection to the renderer.
func WithColor(mode string) EmitterOption {
	return func(e *WriterEmitter) {
		switch strings.ToLower(mode) {
		case ColorAlways:
			e.renderer.SetColorProfile(termenv.TrueColor)
		case ColorNever:
			e.renderer.SetColorProfile(termenv.Ascii)
		}
	}
}

// NewWriterEmitter creates an emitter writing to w. Call sites are shown
// by default; snippets are not.
func NewWriterEmitter(w io.Writer, opts ...EmitterOption) *WriterEmitter {
	e := &WriterEmitter{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		callSite: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	r := e.renderer
	e.badge = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#FF4500"))
	e.text = r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	e.tag = r.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)
	e.dim = r.NewStyle().Foreground(lipgloss.Color("#888888"))
	return e
}

// Emit writes ev as one block of lines.
func (e *WriterEmitter) Emit(ev Event) error {
	var b strings.Builder

	b.WriteString(e.badge.Render(" 🔥 ROAST "))
	b.WriteString(" ")
	b.WriteString(e.text.Render(ev.Roast.Text))
	b.WriteString(" ")
	b.WriteString(e.tag.Render(fmt.Sprintf("[%s/%s]", ev.Roast.Level, ev.Roast.Category)))
	b.WriteString("\n")

	if ev.Site != nil && e.callSite {
		b.WriteString(e.dim.Render("   at " + ev.Site.String()))
		b.WriteString("\n")
	}

	if ev.Site != nil && e.snippet {
		if src, ok := sourceLine(ev.Site.File, ev.Site.Line); ok {
			gutter := e.dim.Render(fmt.Sprintf("   %4d │ ", ev.Site.Line))
			b.WriteString(gutter + highlight(e.renderer, ev.Site.File, strings.TrimSpace(src)))
			b.WriteString("\n")
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := io.WriteString(e.w, b.String())
	return err
}
