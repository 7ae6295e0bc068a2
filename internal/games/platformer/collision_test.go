package platformer

import (
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// flatStage is a 1000x600 playfield with a ground slab at y=560.
func flatStage() Stage {
	return Stage{
		Width:     1000,
		Height:    600,
		BlockSize: 32,
		Start:     core.Vec2{X: 100, Y: 528},
		Platforms: []core.Box{core.NewBox(0, 560, 1000, 40)},
	}
}

func newTestSession(t *testing.T, st Stage) *Session {
	t.Helper()
	s, err := NewSession(st, config.DefaultPlatformerConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestClassifyStomp(t *testing.T) {
	enemy := core.NewBox(400, 500, 32, 32) // MidY 516

	tests := []struct {
		name   string
		player core.Box
		vy     float64
		want   Contact
	}{
		{"falling onto the top half", core.NewBox(400, 473, 32, 32), 150, ContactSquish},
		{"bottom exactly at midpoint", core.NewBox(400, 484, 32, 32), 150, ContactHit},
		{"below midpoint", core.NewBox(400, 490, 32, 32), 150, ContactHit},
		{"rising into the top", core.NewBox(400, 473, 32, 32), -150, ContactHit},
		{"resting on top", core.NewBox(400, 473, 32, 32), 0, ContactHit},
		{"side contact", core.NewBox(380, 500, 32, 32), 0, ContactHit},
		{"no overlap", core.NewBox(400, 400, 32, 32), 150, ContactNone},
		{"touching edges", core.NewBox(432, 500, 32, 32), 150, ContactNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyStomp(tc.player, tc.vy, enemy); got != tc.want {
				t.Errorf("ClassifyStomp = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSquishScenario(t *testing.T) {
	// Player falling at 150 px/s with its bottom at 505, enemy midpoint 516.
	player := core.NewBox(400, 505-32, 32, 32)
	enemy := core.NewBox(400, 500, 32, 32)

	if got := ClassifyStomp(player, 150, enemy); got != ContactSquish {
		t.Errorf("ClassifyStomp = %v, expected squish", got)
	}
}

func TestClassifyBlockContact(t *testing.T) {
	block := core.NewBox(100, 100, 32, 32) // bottom 132, band starts at 125.6

	tests := []struct {
		name  string
		mover core.Box
		vy    float64
		want  Contact
	}{
		{"rising under the middle", core.NewBox(100, 128, 32, 32), -300, ContactFromBelow},
		{"rising with a fifth under", core.NewBox(125, 128, 32, 32), -300, ContactFromBelow},
		{"rising with too little overlap", core.NewBox(126, 128, 32, 32), -300, ContactVertical},
		{"in the bottom band, not rising", core.NewBox(110, 126, 32, 32), 50, ContactFromBelow},
		{"in the band with too little overlap", core.NewBox(120, 126, 32, 32), 50, ContactVertical},
		{"landing on top", core.NewBox(105, 70, 32, 32), 200, ContactVertical},
		{"walking into the side", core.NewBox(75, 105, 32, 32), 0, ContactSide},
		{"apart", core.NewBox(200, 100, 32, 32), 0, ContactNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyBlockContact(tc.mover, tc.vy, block); got != tc.want {
				t.Errorf("ClassifyBlockContact = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestLandOnPlatformScenario(t *testing.T) {
	s := newTestSession(t, flatStage())
	p := s.player
	p.Pos = core.Vec2{X: 400, Y: 560}
	p.Vel.Y = 50
	p.airborne = true

	s.collide(p, NewPlatform(300, 560, 200, 20))

	if p.Pos.Y != 560-p.H {
		t.Errorf("y = %v, expected %v", p.Pos.Y, 560-p.H)
	}
	if p.Vel.Y != 0 {
		t.Errorf("vy = %v, expected 0", p.Vel.Y)
	}
	if !p.Grounded() || p.Airborne() {
		t.Error("player should be grounded after landing")
	}
}

func TestEnemyLandsOnPlatform(t *testing.T) {
	s := newTestSession(t, flatStage())
	e := NewEnemy(400, 560-32+4, 800, s.cfg.Enemy)
	e.Vel.Y = 50
	if e.Grounded() {
		t.Fatal("new enemy should start airborne")
	}

	s.collide(e, NewPlatform(300, 560, 200, 20))
	if e.Pos.Y != 560-32 || e.Vel.Y != 0 {
		t.Errorf("enemy pos y = %v vy = %v, expected %v and 0", e.Pos.Y, e.Vel.Y, 560-32)
	}
	if !e.Grounded() {
		t.Error("enemy should be grounded after landing")
	}

	e.Update(0.016)
	if e.Grounded() {
		t.Error("grounded should clear until the next landing")
	}
}

func TestPlatformIgnoresNonOverlappingMover(t *testing.T) {
	s := newTestSession(t, flatStage())
	p := s.player
	p.Pos = core.Vec2{X: 100, Y: 300}
	before := p.Pos

	s.collide(p, NewPlatform(200, 250, 100, 100))
	if p.Pos != before {
		t.Errorf("non-overlapping platform moved the player to %v", p.Pos)
	}
}

func TestEnemyEdgeTurnaround(t *testing.T) {
	platform := NewPlatform(300, 460, 200, 20)

	tests := []struct {
		x       float64
		vx      float64
		reverse bool
	}{
		{303, -50, false},
		{302.5, -50, false},
		{302, -50, true},
		{301, -50, true},
		{290, -50, true},
		{302, 50, false}, // Moving away from the left edge
	}

	for _, tc := range tests {
		s := newTestSession(t, flatStage())
		e := NewEnemy(tc.x, 460-32, 800, s.cfg.Enemy)
		e.Vel.X = tc.vx

		s.collide(e, platform)

		reversed := e.Vel.X == -tc.vx
		if reversed != tc.reverse {
			t.Errorf("x=%v vx=%v: reversed=%v, expected %v", tc.x, tc.vx, reversed, tc.reverse)
		}
	}
}

func TestEnemyRightEdgeTurnaround(t *testing.T) {
	s := newTestSession(t, flatStage())
	platform := NewPlatform(300, 460, 200, 20) // right edge 500

	for _, tc := range []struct {
		x       float64
		reverse bool
	}{
		{465, false},
		{466, true},
		{470, true},
	} {
		e := NewEnemy(tc.x, 428, 800, s.cfg.Enemy)
		e.Vel.X = 50
		s.collide(e, platform)
		if reversed := e.Vel.X < 0; reversed != tc.reverse {
			t.Errorf("x=%v: reversed=%v, expected %v", tc.x, reversed, tc.reverse)
		}
	}
}

func TestEnemyTurnaroundNeedsFeetOnTop(t *testing.T) {
	s := newTestSession(t, flatStage())
	platform := NewPlatform(300, 460, 200, 20)

	// Feet 10 px above the top: falling, not patrolling.
	e := NewEnemy(301, 460-32-10, 800, s.cfg.Enemy)
	s.collide(e, platform)
	if e.Vel.X > 0 {
		t.Error("airborne enemy should not turn around")
	}

	// Feet within tolerance.
	e = NewEnemy(301, 460-32-3, 800, s.cfg.Enemy)
	s.collide(e, platform)
	if e.Vel.X < 0 {
		t.Error("enemy with feet near the top should turn around")
	}
}

func TestBlockPushOut(t *testing.T) {
	s := newTestSession(t, flatStage())
	block := NewBlock(200, 400, 32, ItemCoin)

	t.Run("pickup side bump reverses", func(t *testing.T) {
		p := NewPickup(Reward{Kind: ItemMushroom, X: 175, Y: 405}, 800, s.cfg.Pickup)
		p.Vel.X = 60
		s.collide(p, block)
		if p.Pos.X != 200-32 {
			t.Errorf("x = %v, expected %v", p.Pos.X, 200-32)
		}
		if p.Vel.X != -60 {
			t.Errorf("vx = %v, expected -60", p.Vel.X)
		}
	})

	t.Run("player lands on top", func(t *testing.T) {
		pl := s.player
		pl.Pos = core.Vec2{X: 205, Y: 372}
		pl.Vel.Y = 100
		s.collide(pl, block)
		if pl.Pos.Y != 400-pl.H || pl.Vel.Y != 0 || !pl.Grounded() {
			t.Errorf("player y=%v vy=%v grounded=%v", pl.Pos.Y, pl.Vel.Y, pl.Grounded())
		}
		if block.Used() {
			t.Error("landing on a block must not activate it")
		}
	})

	t.Run("pickup walking off the edge stays on top", func(t *testing.T) {
		s.dt = frame
		p := NewPickup(Reward{Kind: ItemMushroom, X: 0, Y: 0}, 800, s.cfg.Pickup)
		p.Pos = core.Vec2{X: block.Box().Right() - 0.125, Y: 400.25 - p.H}
		p.Vel = core.Vec2{X: 60, Y: 15}
		s.collide(p, block)
		if p.Pos.Y != 400-p.H || p.Vel.Y != 0 {
			t.Errorf("pickup y=%v vy=%v, expected resting on the block", p.Pos.Y, p.Vel.Y)
		}
		if p.Vel.X != 60 {
			t.Errorf("vx = %v, expected unchanged 60", p.Vel.X)
		}
	})

	t.Run("enemy never activates", func(t *testing.T) {
		b := NewBlock(600, 400, 32, ItemMushroom)
		e := NewEnemy(600, 428, 800, s.cfg.Enemy)
		e.Vel.Y = -100
		s.collide(e, b)
		if b.Used() {
			t.Error("enemy activated a block")
		}
		if e.Pos.Y != b.Box().Bottom() {
			t.Errorf("enemy y = %v, expected pushed below the block", e.Pos.Y)
		}
	})
}

func TestPlayerHitsBlockFromBelow(t *testing.T) {
	s := newTestSession(t, flatStage())
	block := NewBlock(200, 400, 32, ItemCoin)
	p := s.player
	p.Pos = core.Vec2{X: 200, Y: 425}
	p.Vel.Y = -300

	s.collide(p, block)

	if !block.Used() {
		t.Fatal("block should be activated from below")
	}
	if s.coins != 1 || s.score != s.cfg.Gameplay.CoinPoints {
		t.Errorf("coins=%d score=%d", s.coins, s.score)
	}
	if p.Pos.Y != 432 || p.Vel.Y != 0 {
		t.Errorf("player y=%v vy=%v, expected bonked below the block", p.Pos.Y, p.Vel.Y)
	}

	// A used block only bonks.
	p.Pos.Y = 425
	p.Vel.Y = -300
	s.collide(p, block)
	if s.coins != 1 {
		t.Error("used block paid out twice")
	}
}

func TestCollisionRulesCoverEveryPair(t *testing.T) {
	pairs := []kindPair{
		{KindPlayer, KindPlatform},
		{KindEnemy, KindPlatform},
		{KindPickup, KindPlatform},
		{KindPlayer, KindBlock},
		{KindEnemy, KindBlock},
		{KindPickup, KindBlock},
		{KindPlayer, KindPickup},
		{KindPlayer, KindEnemy},
	}
	for _, p := range pairs {
		if _, ok := collisionRules[p]; !ok {
			t.Errorf("no collision rule for %v vs %v", p.mover, p.other)
		}
	}
}
