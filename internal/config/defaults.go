package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration,
// including the built-in stage.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity: 800,
			MaxDT:   0,
		},
		Player: PlatformerPlayer{
			Width:       32,
			SmallHeight: 32,
			BigHeight:   64,
			Speed:       200,
			JumpImpulse: -400,
			StompBounce: -200,
		},
		Enemy: PlatformerEnemy{
			Width:          32,
			Height:         32,
			Speed:          50,
			SquishDuration: 0.5,
			EdgeMargin:     2,
			FeetTolerance:  4,
		},
		Pickup: PlatformerPickup{
			Size:  32,
			Speed: 60,
		},
		Gameplay: PlatformerGameplay{
			Lives:       3,
			RespawnLock: 2.0,
			CoinPoints:  100,
			StompPoints: 100,
			ItemPoints:  1000,
			ViewportW:   800,
			ViewportH:   600,
		},
		Stage: DefaultStageLayout(),
	}
}

// DefaultStageLayout returns the built-in stage.
func DefaultStageLayout() StageLayout {
	return StageLayout{
		Width:     2400,
		Height:    600,
		BlockSize: 32,
		Start:     PointConfig{X: 100, Y: 510},
		Platforms: []RectConfig{
			{X: 0, Y: 560, Width: 1200, Height: 40},
			{X: 1296, Y: 560, Width: 1104, Height: 40},
			{X: 300, Y: 460, Width: 200, Height: 20},
			{X: 600, Y: 360, Width: 200, Height: 20},
			{X: 1500, Y: 460, Width: 160, Height: 20},
			{X: 1800, Y: 380, Width: 200, Height: 20},
		},
		Blocks: []BlockConfig{
			{X: 200, Y: 400, Kind: "coin"},
			{X: 232, Y: 400, Kind: "mushroom"},
			{X: 264, Y: 400, Kind: "coin"},
			{X: 680, Y: 230, Kind: "coin"},
			{X: 1550, Y: 330, Kind: "mushroom"},
		},
		Enemies: []PointConfig{
			{X: 500, Y: 528},
			{X: 350, Y: 428},
			{X: 1000, Y: 528},
			{X: 1550, Y: 528},
			{X: 1850, Y: 348},
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{Width: 800, Height: 400},
		Ball: PongBall{
			Speed:         300,
			Radius:        10,
			MinSpeedScale: 0.8,
			MaxSpeedScale: 1.2,
		},
		Paddles: PongPaddles{
			Width:  10,
			Height: 100,
			Offset: 50,
			Speed:  300,
		},
		Gameplay: PongGameplay{
			WinScore:   5,
			ServeDelay: 1.0,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.85,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{Width: 800, Height: 400},
		Ball: BreakoutBall{
			Speed:          300,
			Radius:         10,
			MaxBounceAngle: 60,
			LaunchAngle:    60,
		},
		Paddle: BreakoutPaddle{
			Width:  100,
			Height: 10,
			Y:      380,
			Speed:  300,
		},
		Bricks: BreakoutBricks{
			Rows:    5,
			Cols:    8,
			Width:   80,
			Height:  20,
			Padding: 10,
			Top:     50,
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BrickPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
