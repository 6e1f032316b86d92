package config

import (
	"sort"

	"github.com/automoto/pigking/shared/gamemath"
)

// Species keys used by level files and sprite sheet directories.
const (
	SpeciesKing    = "king"
	SpeciesKingPig = "kingPig"
)

// SpeciesConfig is the per-kind tuning shared by every character of that
// kind. Character hitboxes are always derived from position plus the fixed
// offset and size below.
type SpeciesConfig struct {
	Name string `yaml:"-"`

	// Sprite frame size in the sheet and the size it is drawn at.
	FrameWidth  int     `yaml:"-"`
	FrameHeight int     `yaml:"-"`
	Width       float64 `yaml:"-"`
	Height      float64 `yaml:"-"`

	HitboxOffsetX float64 `yaml:"hitbox_offset_x"`
	HitboxOffsetY float64 `yaml:"hitbox_offset_y"`
	HitboxWidth   float64 `yaml:"hitbox_width"`
	HitboxHeight  float64 `yaml:"hitbox_height"`
	AttackWidth   float64 `yaml:"attack_width"`
	AttackHeight  float64 `yaml:"attack_height"`

	// Movement
	RunSpeed         float64 `yaml:"run_speed"`
	JumpPower        float64 `yaml:"jump_power"`
	Gravity          float64 `yaml:"gravity"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	GroundBufferTime float64 `yaml:"ground_buffer_time"`

	// Combat
	MaxHealth      int     `yaml:"max_health"`
	Damage         int     `yaml:"damage"`
	KnockbackX     float64 `yaml:"knockback_x"`
	KnockbackY     float64 `yaml:"knockback_y"`
	HitCooldown    float64 `yaml:"hit_cooldown"`
	AttackCooldown float64 `yaml:"attack_cooldown"`

	// AI, unused for the player
	DetectionRange float64 `yaml:"detection_range"`
	AttackRange    float64 `yaml:"attack_range"`
	JumpTriggerDY  float64 `yaml:"jump_trigger_dy"`
	JumpTriggerDX  float64 `yaml:"jump_trigger_dx"`

	Clips ClipTable `yaml:"-"`
}

// HitboxAt returns the hitbox for a character whose sprite origin is pos.
func (s *SpeciesConfig) HitboxAt(pos gamemath.Vector2) gamemath.Rect {
	return gamemath.NewRect(pos.X+s.HitboxOffsetX, pos.Y+s.HitboxOffsetY, s.HitboxWidth, s.HitboxHeight)
}

// AttackBoxAt returns the attack area in front of a hitbox. It sits flush
// against the hitbox edge on the facing side and is vertically centred.
func (s *SpeciesConfig) AttackBoxAt(hitbox gamemath.Rect, facing float64) gamemath.Rect {
	x := hitbox.Right()
	if facing < 0 {
		x = hitbox.X - s.AttackWidth
	}
	y := hitbox.Y + (hitbox.Height-s.AttackHeight)/2
	return gamemath.NewRect(x, y, s.AttackWidth, s.AttackHeight)
}

// sized fills in the draw size from the frame aspect ratio, using height as
// the reference.
func sized(s SpeciesConfig, height float64) SpeciesConfig {
	s.Height = height
	s.Width = float64(s.FrameWidth) / float64(s.FrameHeight) * height
	return s
}

// Species holds all registered species by key.
var Species map[string]*SpeciesConfig

// Player and KingPig point into Species.
var (
	Player  *SpeciesConfig
	KingPig *SpeciesConfig
)

// LookupSpecies returns the species registered under key.
func LookupSpecies(key string) (*SpeciesConfig, bool) {
	s, ok := Species[key]
	return s, ok
}

// SpeciesKeys returns the registered keys in sorted order.
func SpeciesKeys() []string {
	keys := make([]string, 0, len(Species))
	for k := range Species {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func defaultSpecies() map[string]*SpeciesConfig {
	king := sized(SpeciesConfig{
		Name:        SpeciesKing,
		FrameWidth:  78,
		FrameHeight: 58,
	}, 32)
	king.HitboxOffsetX = king.Width * 0.3
	king.HitboxOffsetY = king.Height * 0.3
	king.HitboxWidth = king.Width * 0.2
	king.HitboxHeight = king.Height * 0.4
	king.AttackWidth = king.Width * 0.3
	king.AttackHeight = king.Height * 0.4
	king.RunSpeed = 100
	king.JumpPower = 250
	king.Gravity = 580
	king.MaxFallSpeed = 700
	king.GroundBufferTime = 0.1
	king.MaxHealth = 100
	king.Damage = 25
	king.KnockbackX = 100
	king.KnockbackY = -200
	king.HitCooldown = 0.5
	king.Clips = kingClips()

	pig := sized(SpeciesConfig{
		Name:        SpeciesKingPig,
		FrameWidth:  38,
		FrameHeight: 28,
	}, 24)
	pig.HitboxWidth = pig.Width * 0.6
	pig.HitboxHeight = pig.Height * 0.8
	pig.HitboxOffsetX = (pig.Width - pig.HitboxWidth) / 2
	pig.HitboxOffsetY = pig.Height * 0.2
	pig.AttackWidth = pig.Width * 0.8
	pig.AttackHeight = pig.Height * 0.6
	pig.RunSpeed = 80
	pig.JumpPower = 400
	pig.Gravity = 580
	pig.MaxFallSpeed = 700
	pig.GroundBufferTime = 0.5
	pig.MaxHealth = 100
	pig.Damage = 20
	pig.KnockbackX = 100
	pig.KnockbackY = -200
	pig.HitCooldown = 0.5
	pig.AttackCooldown = 0.5
	pig.DetectionRange = 200
	pig.AttackRange = 50
	pig.JumpTriggerDY = -50
	pig.JumpTriggerDX = 150
	pig.Clips = kingPigClips()

	return map[string]*SpeciesConfig{
		SpeciesKing:    &king,
		SpeciesKingPig: &pig,
	}
}

func initSpecies() {
	Species = defaultSpecies()
	Player = Species[SpeciesKing]
	KingPig = Species[SpeciesKingPig]
}
