package platformer

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// ErrInvalidStage reports stage geometry or physics that a session cannot run.
var ErrInvalidStage = errors.New("platformer: invalid stage")

// BlockSpec places a block in a stage.
type BlockSpec struct {
	X, Y float64
	Kind ItemKind
}

// Stage is the starting layout of a session. Sessions copy it, so one
// Stage can start any number of sessions.
type Stage struct {
	Width, Height float64
	BlockSize     float64
	Start         core.Vec2
	Platforms     []core.Box
	Blocks        []BlockSpec
	Enemies       []core.Vec2
}

// StageFromLayout converts a configured layout into a Stage.
func StageFromLayout(l config.StageLayout) (Stage, error) {
	st := Stage{
		Width:     l.Width,
		Height:    l.Height,
		BlockSize: l.BlockSize,
		Start:     core.Vec2{X: l.Start.X, Y: l.Start.Y},
	}
	for _, p := range l.Platforms {
		st.Platforms = append(st.Platforms, core.NewBox(p.X, p.Y, p.Width, p.Height))
	}
	for i, b := range l.Blocks {
		kind, err := ParseItemKind(b.Kind)
		if err != nil {
			return Stage{}, fmt.Errorf("%w: block %d: %v", ErrInvalidStage, i, err)
		}
		st.Blocks = append(st.Blocks, BlockSpec{X: b.X, Y: b.Y, Kind: kind})
	}
	for _, e := range l.Enemies {
		st.Enemies = append(st.Enemies, core.Vec2{X: e.X, Y: e.Y})
	}
	return st, nil
}

// DefaultStage returns the built-in stage.
func DefaultStage() Stage {
	st, err := StageFromLayout(config.DefaultStageLayout())
	if err != nil {
		panic(err)
	}
	return st
}

// bounds is the playfield rectangle.
func (st Stage) bounds() core.Box {
	return core.NewBox(0, 0, st.Width, st.Height)
}

func inside(b, field core.Box) bool {
	return b.X >= field.X && b.Y >= field.Y && b.Right() <= field.Right() && b.Bottom() <= field.Bottom()
}

// Validate checks the stage against the entity sizes in cfg.
func (st Stage) Validate(cfg config.PlatformerConfig) error {
	if st.Width <= 0 || st.Height <= 0 {
		return fmt.Errorf("%w: playfield %gx%g", ErrInvalidStage, st.Width, st.Height)
	}
	if st.BlockSize <= 0 {
		return fmt.Errorf("%w: block size %g", ErrInvalidStage, st.BlockSize)
	}
	field := st.bounds()

	start := core.NewBox(st.Start.X, st.Start.Y, cfg.Player.Width, cfg.Player.SmallHeight)
	if !inside(start, field) {
		return fmt.Errorf("%w: start %v outside the playfield", ErrInvalidStage, st.Start)
	}
	for i, p := range st.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: platform %d has size %gx%g", ErrInvalidStage, i, p.W, p.H)
		}
		if !inside(p, field) {
			return fmt.Errorf("%w: platform %d outside the playfield", ErrInvalidStage, i)
		}
	}
	for i, b := range st.Blocks {
		if !inside(core.NewBox(b.X, b.Y, st.BlockSize, st.BlockSize), field) {
			return fmt.Errorf("%w: block %d outside the playfield", ErrInvalidStage, i)
		}
	}
	for i, e := range st.Enemies {
		if !inside(core.NewBox(e.X, e.Y, cfg.Enemy.Width, cfg.Enemy.Height), field) {
			return fmt.Errorf("%w: enemy %d outside the playfield", ErrInvalidStage, i)
		}
	}
	return nil
}

// validateConfig rejects configurations the physics cannot run with.
func validateConfig(cfg config.PlatformerConfig) error {
	switch {
	case cfg.Physics.Gravity < 0:
		return fmt.Errorf("%w: negative gravity %g", ErrInvalidStage, cfg.Physics.Gravity)
	case cfg.Physics.MaxDT < 0:
		return fmt.Errorf("%w: negative max_dt %g", ErrInvalidStage, cfg.Physics.MaxDT)
	case cfg.Player.Width <= 0 || cfg.Player.SmallHeight <= 0 || cfg.Player.BigHeight <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidStage)
	case cfg.Enemy.Width <= 0 || cfg.Enemy.Height <= 0:
		return fmt.Errorf("%w: enemy size must be positive", ErrInvalidStage)
	case cfg.Pickup.Size <= 0:
		return fmt.Errorf("%w: pickup size must be positive", ErrInvalidStage)
	case cfg.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalidStage)
	case cfg.Gameplay.ViewportW <= 0 || cfg.Gameplay.ViewportH <= 0:
		return fmt.Errorf("%w: viewport must be positive", ErrInvalidStage)
	}
	return nil
}
