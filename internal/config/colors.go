package config

import "github.com/trackmaster/trackmaster/internal/config/colors"

// ColorScheme is the theme section of the config file
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the built-in board palette
func DefaultColorScheme() ColorScheme {
	return colors.Default()
}

// PresetColorScheme returns a built-in scheme by name, e.g. "monochrome"
func PresetColorScheme(name string) ColorScheme {
	return colors.Preset(name)
}
