package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	// TPS is the fixed simulation rate. Every timer in the simulation is a
	// countdown decremented by 1/TPS per tick.
	TPS int
	// GameOverDelay is how long the finished death clip stays on screen
	// before the game over scene opens.
	GameOverDelay float64
}

// DeltaTime returns the fixed step length in seconds.
func (c *Config) DeltaTime() float64 {
	return 1.0 / float64(c.TPS)
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
	Zoom            float64 `yaml:"zoom"`
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	PlayerDamageIntensity float64 // pixels
	PlayerDamageDuration  float64 // seconds
	EnemyDamageIntensity  float64
	EnemyDamageDuration   float64
}

// SaveConfig controls save slots and autosave.
type SaveConfig struct {
	AppName          string
	Slots            int
	AutosaveInterval float64 // seconds of play time
	Version          int
}

// LevelConfig locates the level files inside the embedded level FS.
type LevelConfig struct {
	Dir string
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	HealthDrainTime float64 // seconds for the health bar to catch up

	HealthBarBgColor  color.RGBA
	HealthBarFgColor  color.RGBA
	HealthBarLagColor color.RGBA
	HUDTextColor      color.RGBA

	HUDFontSize   float64
	DebugFontSize float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool   // Skip menu and go directly to game
	Overlay     bool   // Draw hitboxes and static geometry
	TuningFile  string // Optional YAML overrides, watched for changes
	StartLevel  int
	HitboxColor color.RGBA
	AttackColor color.RGBA
	BlockColor  color.RGBA
	PlatColor   color.RGBA
}

// MenuConfig contains menu screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonDisabled  color.RGBA
	ButtonText      color.RGBA
	ButtonWidth     int
	ButtonHeight    int
	Spacing         int
	FontSize        float64
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Save SaveConfig
var Level LevelConfig
var UI UIConfig
var Debug DebugConfig
var Menu MenuConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkPurple   = color.RGBA{R: 63, G: 56, B: 81, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  480,
		Height: 270,
		Title:  "King & Pigs",
		TPS:    60,

		GameOverDelay: 1.0,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		Zoom:            1,
	}

	ScreenShake = ScreenShakeConfig{
		PlayerDamageIntensity: 4,
		PlayerDamageDuration:  0.25,
		EnemyDamageIntensity:  2,
		EnemyDamageDuration:   0.1,
	}

	Save = SaveConfig{
		AppName:          "pigking",
		Slots:            5,
		AutosaveInterval: 300,
		Version:          1,
	}

	Level = LevelConfig{
		Dir: ".",
	}

	UI = UIConfig{
		HealthBarWidth:    80,
		HealthBarHeight:   8,
		HealthBarMargin:   8,
		HealthDrainTime:   0.4,
		HealthBarBgColor:  color.RGBA{R: 40, G: 20, B: 30, A: 220},
		HealthBarFgColor:  color.RGBA{R: 220, G: 50, B: 60, A: 255},
		HealthBarLagColor: color.RGBA{R: 255, G: 220, B: 120, A: 255},
		HUDTextColor:      White,
		HUDFontSize:       10,
		DebugFontSize:     8,
	}

	Debug = DebugConfig{
		HitboxColor: Green,
		AttackColor: Red,
		BlockColor:  Blue,
		PlatColor:   Yellow,
	}

	Menu = MenuConfig{
		BackgroundColor: DarkPurple,
		TitleColor:      White,
		ButtonIdle:      color.RGBA{R: 90, G: 80, B: 110, A: 255},
		ButtonHover:     color.RGBA{R: 120, G: 105, B: 145, A: 255},
		ButtonPressed:   color.RGBA{R: 70, G: 60, B: 90, A: 255},
		ButtonDisabled:  color.RGBA{R: 60, G: 60, B: 60, A: 255},
		ButtonText:      White,
		ButtonWidth:     200,
		ButtonHeight:    24,
		Spacing:         6,
		FontSize:        12,
	}

	initSpecies()
	initInput()
}
