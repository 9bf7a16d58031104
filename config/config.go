package config

import "image/color"

// ArenaConfig contains arena, window and round setup values
type ArenaConfig struct {
	Title string `env:"TITLE"`
	FPS   int    `env:"FPS"`

	// Simulation area (the HUD is drawn around it)
	Width  int `env:"WIDTH"`
	Height int `env:"HEIGHT"`

	// HUD layout
	HUDSidePadding  int
	TopHUDHeight    int
	BottomHUDHeight int

	// Walls
	WallThickness  float64
	WallElasticity float64
	WallFriction   float64

	// Map names a TMX layout under assets/arenas. Empty means a plain
	// rectangle of Width x Height.
	Map string `env:"MAP"`

	// Seed drives crit rolls, spawn placement and speed-up drift.
	// 0 picks a time based seed.
	Seed int64 `env:"SEED"`

	// Spawn placement
	SpawnAttempts int `env:"SPAWN_ATTEMPTS"`
	SpawnCellSize int
}

// BallConfig contains combatant physical and spawn values
type BallConfig struct {
	Radius     float64 `env:"BALL_RADIUS"`
	Mass       float64
	Health     int `env:"BALL_HEALTH"`
	Elasticity float64
	Friction   float64

	// Initial speed bounds are expressed per simulated frame rate:
	// speed is uniform in [MinSpeedPerFPS*fps, MaxSpeedPerFPS*fps].
	MinSpeedPerFPS float64
	MaxSpeedPerFPS float64

	MinAngularVelocity float64
	MaxAngularVelocity float64

	// Speed-up drift
	SpeedupChance float64 // per tick probability
	SpeedupRate   float64 // velocity multiplier step
	VelocityCap   float64 // no drift above this speed

	// Roster names the combatants spawned each round, in HUD order.
	Roster []string `env:"ROSTER" envSeparator:","`
}

// CombatConfig contains collision damage tuning
type CombatConfig struct {
	BaseCritChance float64 `env:"BASE_CRIT_CHANCE"`
	CritScale      float64 `env:"CRIT_SCALE"` // chance added per unit of impact speed
	CritMultiplier int
	SpeedPerDamage float64 // impact speed per point of damage
}

// ModifierConfig contains status modifier tuning
type ModifierConfig struct {
	SecondsPerDamage float64

	PulseDuration float64
	PulseCount    int
	PulseMinAlpha int
	PulseMaxAlpha int
	PulseMinScale float64
	PulseMaxScale float64
}

// EffectConfig contains visual effect durations and sizes
type EffectConfig struct {
	DamageNumberSeconds     float64
	CritDamageNumberSeconds float64
	DamageNumberMinSize     float64
	DamageNumberMaxSize     float64
	DamageNumberOffset      float64 // pixels above the ball edge

	HaloSeconds    float64
	HaloMinPadding float64
	HaloMaxPadding float64
	HaloMaxAlpha   float64

	ImplosionSeconds float64
	ImplosionPadding float64
}

// HUDConfig contains colors and sizes used by the HUD and renderers
type HUDConfig struct {
	BackgroundColor color.RGBA
	ArenaColor      color.RGBA
	WallColor       color.RGBA
	TextColor       color.RGBA
	HealthTextColor color.RGBA
	DamageColor     color.RGBA
	CritColor       color.RGBA
	HaloColor       color.RGBA
	AngryOutline    color.RGBA
	OverlayColor    color.RGBA
	WinnerColor     color.RGBA
	LineSpacing     int
}

// Global configuration instances
var Arena ArenaConfig
var Ball BallConfig
var Combat CombatConfig
var Modifier ModifierConfig
var Effect EffectConfig
var HUD HUDConfig

// RosterColors assigns a fill color per roster name. Names without an entry
// fall back to DefaultBallColor.
var RosterColors map[string]color.RGBA

// Shared RGBA color constants
var (
	White            = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black            = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Cream            = color.RGBA{R: 245, G: 235, B: 220, A: 255}
	DarkGray         = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	MidGray          = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	Red              = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	CritOrange       = color.RGBA{R: 255, G: 180, B: 0, A: 255}
	Gold             = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	HaloYellow       = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	DimOverlay       = color.RGBA{R: 0, G: 0, B: 0, A: 96}
	DefaultBallColor = color.RGBA{R: 100, G: 200, B: 255, A: 255}
)

// MinInitialSpeed is the lower spawn speed bound for the configured frame rate.
func MinInitialSpeed() float64 {
	return Ball.MinSpeedPerFPS * float64(Arena.FPS)
}

// MaxInitialSpeed is the upper spawn speed bound for the configured frame rate.
func MaxInitialSpeed() float64 {
	return Ball.MaxSpeedPerFPS * float64(Arena.FPS)
}

// WindowWidth is the simulation width plus side padding.
func WindowWidth() int {
	return Arena.Width + 2*Arena.HUDSidePadding
}

// WindowHeight is the simulation height plus both HUD bars.
func WindowHeight() int {
	return Arena.Height + Arena.TopHUDHeight + Arena.BottomHUDHeight
}

// ColorFor returns the roster color for name.
func ColorFor(name string) color.RGBA {
	if c, ok := RosterColors[name]; ok {
		return c
	}
	return DefaultBallColor
}

func init() {
	Arena = ArenaConfig{
		Title: "Boink",
		FPS:   60,

		Width:  1280,
		Height: 720,

		HUDSidePadding:  10,
		TopHUDHeight:    40,
		BottomHUDHeight: 80,

		WallThickness:  10,
		WallElasticity: 1.0,
		WallFriction:   0.0,

		Map: "classic",

		SpawnAttempts: 1000,
		SpawnCellSize: 32,
	}

	Ball = BallConfig{
		Radius:     60,
		Mass:       1,
		Health:     100,
		Elasticity: 1.0,
		Friction:   0.1,

		MinSpeedPerFPS: 5.0,
		MaxSpeedPerFPS: 10.0,

		MinAngularVelocity: 0.5,
		MaxAngularVelocity: 2.0,

		SpeedupChance: 0.1,
		SpeedupRate:   0.005,
		VelocityCap:   2000,

		Roster: []string{"nil", "jin", "papa", "mama", "martina"},
	}

	Combat = CombatConfig{
		BaseCritChance: 0.05,   // 5% floor
		CritScale:      0.0001, // 0.01% per unit of impact speed
		CritMultiplier: 2,
		SpeedPerDamage: 20,
	}

	Modifier = ModifierConfig{
		SecondsPerDamage: 0.1,

		PulseDuration: 0.7,
		PulseCount:    3,
		PulseMinAlpha: 120,
		PulseMaxAlpha: 255,
		PulseMinScale: 0.92,
		PulseMaxScale: 1.08,
	}

	Effect = EffectConfig{
		DamageNumberSeconds:     1,
		CritDamageNumberSeconds: 2,
		DamageNumberMinSize:     20,
		DamageNumberMaxSize:     80,
		DamageNumberOffset:      18,

		HaloSeconds:    1,
		HaloMinPadding: 8,
		HaloMaxPadding: 20,
		HaloMaxAlpha:   180,

		ImplosionSeconds: 0.5,
		ImplosionPadding: 10,
	}

	HUD = HUDConfig{
		BackgroundColor: Cream,
		ArenaColor:      White,
		WallColor:       DarkGray,
		TextColor:       Black,
		HealthTextColor: MidGray,
		DamageColor:     Red,
		CritColor:       CritOrange,
		HaloColor:       HaloYellow,
		AngryOutline:    Red,
		OverlayColor:    DimOverlay,
		WinnerColor:     Gold,
		LineSpacing:     5,
	}

	RosterColors = map[string]color.RGBA{
		"nil":     {R: 231, G: 76, B: 60, A: 255},
		"jin":     {R: 52, G: 152, B: 219, A: 255},
		"papa":    {R: 46, G: 204, B: 113, A: 255},
		"mama":    {R: 155, G: 89, B: 182, A: 255},
		"martina": {R: 241, G: 196, B: 15, A: 255},
	}
}
