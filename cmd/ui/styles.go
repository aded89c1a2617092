package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Primary colors
	ColorGreenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	ColorRedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	ColorYellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	ColorBlueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Bold(true)
	ColorCyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	ColorMagentaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Italic(true)
	ColorGrayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	// Roast level styles, mildest first
	MildStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87D75F")).Bold(true)
	MediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	BrutalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true).Underline(true)

	// Layout styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF4500")).
			PaddingLeft(1).
			PaddingRight(1).
			MarginBottom(1)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Underline(true)

	InsultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4500")).
			PaddingLeft(2).
			PaddingRight(2)
)

// Icons
const (
	IconCheckmark = "✓"
	IconCross     = "✗"
	IconFire      = "🔥"
	IconArrow     = "→"
	IconBullet    = "•"
)

// Color wrapper functions
func Green(s string) string {
	return ColorGreenStyle.Render(s)
}

func Red(s string) string {
	return ColorRedStyle.Render(s)
}

func Yellow(s string) string {
	return ColorYellowStyle.Render(s)
}

func Blue(s string) string {
	return ColorBlueStyle.Render(s)
}

func Cyan(s string) string {
	return ColorCyanStyle.Render(s)
}

func Magenta(s string) string {
	return ColorMagentaStyle.Render(s)
}

func Gray(s string) string {
	return ColorGrayStyle.Render(s)
}

// Layout rendering functions
func Header(text string) string {
	return HeaderStyle.Render(text)
}

func Section(text string) string {
	return SectionStyle.Render(text)
}

func InsultBox(text string) string {
	return InsultBoxStyle.Render(text)
}
