package ui

import (
	"fmt"
	"strings"

	"github.com/utkarsh5026/coderoast/pkg/level"
)

// LevelBadge renders a roast level in its own colour.
func LevelBadge(lvl level.Level) string {
	name := strings.ToUpper(lvl.String())
	switch lvl {
	case level.Mild:
		return MildStyle.Render(name)
	case level.Medium:
		return MediumStyle.Render(name)
	case level.Brutal:
		return BrutalStyle.Render(name)
	default:
		return Gray(name)
	}
}

// FormatInsult renders an insult with a fire icon and an optional dim tag.
func FormatInsult(text, tag string) string {
	line := fmt.Sprintf("%s %s", IconFire, Yellow(text))
	if tag != "" {
		line += " " + Gray("["+tag+"]")
	}
	return line
}

// FormatMapping renders "from → to".
func FormatMapping(from, to string) string {
	return fmt.Sprintf("  %s %s %s", Cyan(from), Gray(IconArrow), Blue(to))
}

// KeyValue renders "key = value".
func KeyValue(key, value string) string {
	return fmt.Sprintf("%s = %s", Cyan(key), value)
}

// Bullet renders an indented list item.
func Bullet(text string) string {
	return fmt.Sprintf("  %s %s", Gray(IconBullet), text)
}

// SuccessMessage creates a success message with a checkmark icon
func SuccessMessage(message string, details ...string) string {
	var parts []string
	parts = append(parts, Green(IconCheckmark), Green(message))

	for _, detail := range details {
		parts = append(parts, Blue(detail))
	}

	return strings.Join(parts, " ")
}

// ErrorMessage formats an error message in red
func ErrorMessage(message string) string {
	return Red(IconCross + " " + message)
}

// WarningMessage formats a warning message in yellow
func WarningMessage(message string) string {
	return Yellow(message)
}

// InfoMessage formats an info message in blue
func InfoMessage(message string) string {
	return Blue(message)
}
