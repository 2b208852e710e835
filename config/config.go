package config

import "image/color"

// ArenaConfig describes the square playing field centered on the origin.
type ArenaConfig struct {
	HalfExtent      float64 // Arena spans [-HalfExtent, HalfExtent] on both planar axes
	SpawnHalfExtent float64 // Opponents spawn inside [-SpawnHalfExtent, SpawnHalfExtent]

	// Collision space
	SpaceMargin float64 // Extra room around the arena so stray projectiles keep registering
	CellSize    int     // resolv cell size in arena units
}

// PlayerConfig contains all controlled-entity configuration values
type PlayerConfig struct {
	Health int
	Radius float64

	// Movement
	Thrust   float64 // Velocity added per second of held movement input
	Damping  float64 // Velocity multiplier applied after every step
	TurnRate float64 // Radians per second while a rotate intent is held

	// Firing
	MuzzleGap          float64 // Distance beyond the radius where shots appear
	ProjectileSpeed    float64
	ProjectileLifetime float64 // seconds
}

// OpponentConfig contains autonomous-opponent configuration values
type OpponentConfig struct {
	Health int
	Radius float64
	Speed  float64 // Pursuit speed in units per second

	// Firing
	FireCooldown       float64 // seconds between shots
	ProjectileSpeed    float64
	ProjectileLifetime float64 // seconds

	// Placement before the spawner assigns a position
	StartX float64
	StartY float64

	// Behavior variants enabled on spawned opponents. Only pursuit and
	// single-shot fire are implemented; these are carried for future variants.
	CanTeleport      bool
	MultiFire        bool
	EvasiveManeuvers bool

	// Clamp opponents to the arena like the controlled entity
	ClampToArena bool
}

// ProjectileConfig contains values shared by every projectile
type ProjectileConfig struct {
	Radius     float64
	MaxBounces int
}

// CombatConfig contains hit-test configuration
type CombatConfig struct {
	HitMargin float64 // Added to the target radius for the distance test
	Damage    int     // Damage dealt by a single projectile
}

// SpawnConfig drives the population-scaling spawn policy
type SpawnConfig struct {
	Interval      float64 // seconds between spawn events
	MaxPopulation int     // roster cap
	InitialBatch  int     // opponents spawned when a run starts
	Seed          int64   // seed for spawn placement
}

// LedgerConfig contains score history persistence settings
type LedgerConfig struct {
	MaxEntries  int
	AppName     string // gdata application name
	ItemKey     string // gdata item storing the history
	PointsPerKO int    // score per eliminated opponent
}

// MenuConfig contains menu and game over screen configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	GameOverTitle     string
	TitleY            float64
	HistoryStartY     float64
	HistoryLineHeight float64
	HintY             float64
}

// HUDConfig contains in-game overlay configuration values
type HUDConfig struct {
	TextColor     color.RGBA
	PausedColor   color.RGBA
	OverlayColor  color.RGBA
	Margin        float64
	LineHeight    float64
	FlashSeconds  float32 // Hit flash duration on the controlled entity
	FadeSeconds   float32 // Fade-out of removed visuals
	PixelsPerUnit float64 // Arena units to screen pixels
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Opponent OpponentConfig
var Projectile ProjectileConfig
var Combat CombatConfig
var Spawn SpawnConfig
var Ledger LedgerConfig
var Menu MenuConfig
var HUD HUDConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Start a run immediately instead of showing the menu
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Floor        = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 800,
	}

	Arena = ArenaConfig{
		HalfExtent:      50,
		SpawnHalfExtent: 30,
		SpaceMargin:     16,
		CellSize:        4,
	}

	Player = PlayerConfig{
		Health:   100,
		Radius:   2,
		Thrust:   5,
		Damping:  0.95,
		TurnRate: 6, // 0.1 rad per frame at 60 fps

		MuzzleGap:          0.1,
		ProjectileSpeed:    20,
		ProjectileLifetime: 10,
	}

	Opponent = OpponentConfig{
		Health: 5,
		Radius: 2,
		Speed:  2,

		FireCooldown:       1,
		ProjectileSpeed:    30,
		ProjectileLifetime: 5,

		StartX: 20,
		StartY: 20,

		CanTeleport:      true,
		MultiFire:        true,
		EvasiveManeuvers: true,

		ClampToArena: true,
	}

	Projectile = ProjectileConfig{
		Radius:     0.5,
		MaxBounces: 2,
	}

	Combat = CombatConfig{
		HitMargin: 0.5,
		Damage:    1,
	}

	Spawn = SpawnConfig{
		Interval:      5,
		MaxPopulation: 64,
		InitialBatch:  1,
		Seed:          42,
	}

	Ledger = LedgerConfig{
		MaxEntries:  5,
		AppName:     "arena-survival",
		ItemKey:     "survival-times",
		PointsPerKO: 100,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "ARENA SURVIVAL",
		GameOverTitle:     "GAME OVER",
		TitleY:            160,
		HistoryStartY:     300,
		HistoryLineHeight: 28,
		HintY:             640,
	}

	HUD = HUDConfig{
		TextColor:     White,
		PausedColor:   Yellow,
		OverlayColor:  BlackOverlay,
		Margin:        12,
		LineHeight:    18,
		FlashSeconds:  0.25,
		FadeSeconds:   0.3,
		PixelsPerUnit: 7,
	}
}
