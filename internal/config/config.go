// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
//
// All distances are playfield pixels and all durations are seconds; the
// games simulate in pixel space and the platform scales to the terminal.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics  PlatformerPhysics  `yaml:"physics"`
	Player   PlatformerPlayer   `yaml:"player"`
	Enemy    PlatformerEnemy    `yaml:"enemy"`
	Pickup   PlatformerPickup   `yaml:"pickup"`
	Gameplay PlatformerGameplay `yaml:"gameplay"`
	Stage    StageLayout        `yaml:"stage"`
}

// PlatformerPhysics defines world physics.
type PlatformerPhysics struct {
	Gravity float64 `yaml:"gravity"`
	// MaxDT caps the per-frame elapsed time handed to the simulation.
	// 0 leaves dt unclamped, so a long pause produces a large position jump.
	MaxDT float64 `yaml:"max_dt"`
}

// PlatformerPlayer defines the player's size and movement.
type PlatformerPlayer struct {
	Width       float64 `yaml:"width"`
	SmallHeight float64 `yaml:"small_height"`
	BigHeight   float64 `yaml:"big_height"`
	Speed       float64 `yaml:"speed"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = upward
	StompBounce float64 `yaml:"stomp_bounce"` // Upward velocity after a squish
}

// PlatformerEnemy defines Goomba-like walkers.
type PlatformerEnemy struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	SquishDuration float64 `yaml:"squish_duration"`
	EdgeMargin     float64 `yaml:"edge_margin"`    // Distance from a platform edge that triggers a turn
	FeetTolerance  float64 `yaml:"feet_tolerance"` // How close feet must be to a platform top to patrol it
}

// PlatformerPickup defines spawned power-up items.
type PlatformerPickup struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// PlatformerGameplay defines lives, scoring and the viewport.
type PlatformerGameplay struct {
	Lives       int     `yaml:"lives"`
	RespawnLock float64 `yaml:"respawn_lock"`
	CoinPoints  int     `yaml:"coin_points"`
	StompPoints int     `yaml:"stomp_points"`
	ItemPoints  int     `yaml:"item_points"`
	ViewportW   float64 `yaml:"viewport_width"`
	ViewportH   float64 `yaml:"viewport_height"`
}

// StageLayout is the starting layout of a platformer stage.
type StageLayout struct {
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	BlockSize float64       `yaml:"block_size"`
	Start     PointConfig   `yaml:"start"`
	Platforms []RectConfig  `yaml:"platforms"`
	Blocks    []BlockConfig `yaml:"blocks"`
	Enemies   []PointConfig `yaml:"enemies"`
}

// PointConfig is a position in the stage.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectConfig is a rectangle in the stage.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BlockConfig places a power-up block. Kind is "coin" or "mushroom".
type BlockConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Kind string  `yaml:"kind"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ball       PongBall         `yaml:"ball"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the size of a playfield in pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongBall defines ball speed and paddle-hit speed variation.
type PongBall struct {
	Speed         float64 `yaml:"speed"`
	Radius        float64 `yaml:"radius"`
	MinSpeedScale float64 `yaml:"min_speed_scale"` // Paddle hit rescales speed into [min, max] * speed
	MaxSpeedScale float64 `yaml:"max_speed_scale"`
}

// PongPaddles defines paddle geometry and speed.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Distance of the paddle face from the side wall
	Speed  float64 `yaml:"speed"`
}

// PongGameplay defines scoring.
type PongGameplay struct {
	WinScore   int     `yaml:"win_score"`
	ServeDelay float64 `yaml:"serve_delay"`
}

// PongCPU defines the CPU opponent's reaction skill (0-1).
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ball       BreakoutBall     `yaml:"ball"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	MaxBounceAngle float64 `yaml:"max_bounce_angle"` // Degrees, total spread across the paddle
	LaunchAngle    float64 `yaml:"launch_angle"`     // Degrees, random spread at launch
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"`
}

// BreakoutBricks defines the brick wall.
type BreakoutBricks struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
	Top     float64 `yaml:"top"`
}

// BreakoutGameplay defines lives and scoring.
type BreakoutGameplay struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
