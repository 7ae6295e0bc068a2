package breakout

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	runtime := core.DefaultConfig()
	runtime.Seed = seed
	g := New()
	g.reset(runtime, config.DefaultBreakoutConfig())
	return g
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func hasEvent(res core.StepResult, ev string) bool {
	for _, e := range res.Events {
		if e == ev {
			return true
		}
	}
	return false
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 42)

	if g.state != StatePlaying {
		t.Errorf("new game should start in play, got %s", g.state)
	}
	if g.lives != 3 || g.score != 0 {
		t.Errorf("lives/score = %d/%d, expected 3/0", g.lives, g.score)
	}
	if g.paddle.X != 400 || g.paddle.Y != 380 {
		t.Errorf("paddle at (%v, %v), expected (400, 380)", g.paddle.X, g.paddle.Y)
	}
	if g.ball.Pos != (core.Vec2{X: 400, Y: 300}) {
		t.Errorf("ball at %v, expected (400, 300)", g.ball.Pos)
	}
	if g.ball.Vel.Y >= 0 {
		t.Error("ball should launch upward")
	}
	if math.Abs(g.ball.Vel.Len()-300) > 1e-9 {
		t.Errorf("launch speed = %v, expected 300", g.ball.Vel.Len())
	}
	if math.Abs(g.ball.Vel.X) > 300*math.Sin(math.Pi/6)+1e-9 {
		t.Errorf("launch angle beyond 30 degrees: %v", g.ball.Vel)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		switch {
		case i%5 < 3:
			inputs[i] = input(core.ActionRight)
		default:
			inputs[i] = input(core.ActionLeft)
		}
	}

	run := func() *Game {
		g := newTestGame(t, 12345)
		for _, in := range inputs {
			if g.Step(in, 1.0/60).State.GameOver {
				break
			}
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.ball != g2.ball || g1.paddle != g2.paddle {
		t.Error("same seed and inputs should give the same ball and paddle")
	}
	if g1.score != g2.score || g1.lives != g2.lives {
		t.Errorf("runs diverged: %d/%d vs %d/%d", g1.score, g1.lives, g2.score, g2.lives)
	}
}

func TestBrickHitScoresAndReflects(t *testing.T) {
	g := newTestGame(t, 1)
	g.ball.Pos = core.Vec2{X: 50, Y: 85}
	g.ball.Vel = core.Vec2{X: 0, Y: -300}

	res := g.Step(input(), 0.02)
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if g.ball.Vel.Y != 300 {
		t.Errorf("vy = %v, expected 300 after a brick hit", g.ball.Vel.Y)
	}
	if g.level.CountAlive() != 39 {
		t.Errorf("alive bricks = %d, expected 39", g.level.CountAlive())
	}
	if !hasEvent(res, EventBrick) {
		t.Error("expected brick event")
	}
}

func TestMissCostsLifeAndServes(t *testing.T) {
	g := newTestGame(t, 1)
	g.paddle.X = 100
	g.ball.Pos = core.Vec2{X: 600, Y: 395}
	g.ball.Vel = core.Vec2{X: 0, Y: 300}

	res := g.Step(input(), 0.05)
	if g.lives != 2 {
		t.Fatalf("lives = %d, expected 2", g.lives)
	}
	if g.state != StateServe || !hasEvent(res, EventLifeLost) {
		t.Errorf("state = %s, events = %v", g.state, res.Events)
	}
	if res.State.Lives != 2 {
		t.Errorf("reported lives = %d", res.State.Lives)
	}

	// The ball relaunches on its own once the delay has run out.
	g.Step(input(), 0.5)
	if g.state != StateServe {
		t.Fatal("ball relaunched before the serve delay")
	}
	res = g.Step(input(), 0.6)
	if g.state != StatePlaying || !hasEvent(res, EventLaunch) {
		t.Errorf("expected relaunch, state = %s", g.state)
	}
}

func TestJumpLaunchesEarly(t *testing.T) {
	g := newTestGame(t, 1)
	g.handleMiss()

	g.Step(input(core.ActionJump), 0.016)
	if g.state != StatePlaying {
		t.Errorf("SPACE should launch during serve, state = %s", g.state)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	g.lives = 1
	g.paddle.X = 100
	g.ball.Pos = core.Vec2{X: 600, Y: 395}
	g.ball.Vel = core.Vec2{X: 0, Y: 300}

	res := g.Step(input(), 0.05)
	if !res.State.GameOver || g.state != StateGameOver {
		t.Fatal("losing the last life should end the game")
	}
	if !hasEvent(res, EventGameOver) {
		t.Error("expected game-over event")
	}

	g.Step(input(core.ActionLeft), 0.5)
	if g.paddle.X != 100 {
		t.Error("paddle should not move after game over")
	}

	g.Step(input(core.ActionRestart), 0.016)
	if g.state != StatePlaying || g.lives != 3 || g.level.CountAlive() != 40 {
		t.Error("R should restart a finished game")
	}
}

func TestClearingWallWins(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 1; i < len(g.level.Bricks); i++ {
		g.level.Bricks[i].Alive = false
	}
	g.ball.Pos = core.Vec2{X: 50, Y: 85}
	g.ball.Vel = core.Vec2{X: 0, Y: -300}

	res := g.Step(input(), 0.02)
	if g.state != StateWin || !res.State.GameOver {
		t.Fatalf("state = %s, expected win", g.state)
	}
	if !hasEvent(res, EventClear) {
		t.Error("expected clear event")
	}
}

func TestPaddleMovementClamped(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(input(core.ActionRight), 0.1)
	if math.Abs(g.paddle.X-430) > 1e-9 {
		t.Errorf("paddle x = %v, expected 430", g.paddle.X)
	}

	g.Step(input(core.ActionLeft), 10)
	if g.paddle.X != 50 {
		t.Errorf("paddle x = %v, expected clamp at 50", g.paddle.X)
	}
}

func TestPauseFreezesBall(t *testing.T) {
	g := newTestGame(t, 1)
	before := g.ball.Pos

	res := g.Step(input(core.ActionPause), 0.1)
	if !res.State.Paused {
		t.Fatal("P should pause")
	}
	g.Step(input(), 0.1)
	if g.ball.Pos != before {
		t.Error("ball moved while paused")
	}
}

func TestScoreRaisesBallSpeed(t *testing.T) {
	g := newTestGame(t, 1)
	base := g.ballSpeed()

	g.score = 400
	if got := g.ballSpeed(); math.Abs(got-base*1.5) > 1e-9 {
		t.Errorf("speed at max difficulty = %v, expected %v", got, base*1.5)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Lives: 3") {
		t.Error("render should show score and lives")
	}
	if !strings.ContainsRune(out, PaddleChar) {
		t.Error("render should draw the paddle")
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("render should refuse tiny screens")
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("breakout") {
		t.Error("breakout should be registered")
	}
}
