package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig lists the window options offered by the menu.
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Settings is the global window settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 540, Label: "960 x 540"},
			{Width: 1440, Height: 810, Label: "1440 x 810"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
	}
}
