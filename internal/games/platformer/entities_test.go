package platformer

import (
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/config"
)

func TestBlockActivateIsOneShot(t *testing.T) {
	for _, kind := range []ItemKind{ItemCoin, ItemMushroom, ItemFlower} {
		t.Run(kind.String(), func(t *testing.T) {
			b := NewBlock(0, 0, 32, kind)
			if r := b.Activate(false); r == nil {
				t.Fatal("first Activate should return a reward")
			}
			for i := 0; i < 5; i++ {
				if r := b.Activate(false); r != nil {
					t.Fatalf("Activate #%d returned %+v, expected nil", i+2, r)
				}
			}
			if !b.Used() {
				t.Error("block should be used")
			}
		})
	}
}

func TestGrowBlockScenario(t *testing.T) {
	b := NewBlock(320, 100, 32, ItemMushroom)

	r := b.Activate(false)
	if r == nil || r.Kind != ItemMushroom {
		t.Fatalf("small player: reward = %+v, expected mushroom", r)
	}
	if r.X != 320 || r.Y != 68 {
		t.Errorf("reward spawns at (%v, %v), expected just above the block", r.X, r.Y)
	}
	if b.Activate(false) != nil {
		t.Error("reactivating the block should return nil")
	}
}

func TestGrowBlockWhileBigYieldsFlower(t *testing.T) {
	b := NewBlock(0, 0, 32, ItemMushroom)
	r := b.Activate(true)
	if r == nil || r.Kind != ItemFlower {
		t.Fatalf("big player: reward = %+v, expected flower", r)
	}

	coin := NewBlock(0, 0, 32, ItemCoin)
	if r := coin.Activate(true); r.Kind != ItemCoin {
		t.Errorf("coin block while big gave %v", r.Kind)
	}
}

func TestBlockBumpAnimation(t *testing.T) {
	b := NewBlock(0, 0, 32, ItemCoin)
	b.Activate(false)
	if b.Bump() <= 0 {
		t.Fatal("activation should start the bump animation")
	}
	b.Update(1)
	if b.Bump() != 0 {
		t.Errorf("bump = %v after it expired", b.Bump())
	}
}

func TestEnemySquishLifecycle(t *testing.T) {
	cfg := config.DefaultPlatformerConfig().Enemy
	e := NewEnemy(400, 500, 800, cfg)
	if e.Vel.X != -cfg.Speed {
		t.Errorf("new enemy vx = %v, expected %v", e.Vel.X, -cfg.Speed)
	}

	feet := e.Feet()
	e.Squish(0.5)

	if !e.Squished() || !e.Active() {
		t.Fatal("squished enemy should stay active until the timer runs out")
	}
	if e.H != 16 || e.Feet() != feet {
		t.Errorf("squish: h=%v feet=%v, expected h=16 feet=%v", e.H, e.Feet(), feet)
	}
	if e.Vel.X != 0 {
		t.Error("squished enemy should stop")
	}
	if e.Dangerous() {
		t.Error("squished enemy should not be dangerous")
	}

	e.Update(0.3)
	if !e.Active() {
		t.Fatal("enemy deactivated too early")
	}
	pos := e.Pos
	e.Update(0.3)
	if e.Active() {
		t.Error("enemy should be inactive after the squish duration")
	}
	if e.Pos != pos {
		t.Error("squished enemy should not move")
	}
}

func TestPickupMotion(t *testing.T) {
	cfg := config.DefaultPlatformerConfig().Pickup

	m := NewPickup(Reward{Kind: ItemMushroom, X: 0, Y: 0}, 800, cfg)
	m.Update(0.5)
	if m.Pos.X != 30 {
		t.Errorf("mushroom x = %v, expected 30", m.Pos.X)
	}
	if m.Pos.Y <= 0 {
		t.Error("mushroom should fall under gravity")
	}

	f := NewPickup(Reward{Kind: ItemFlower, X: 10, Y: 20}, 800, cfg)
	f.Update(0.5)
	if f.Pos.X != 10 || f.Pos.Y != 20 {
		t.Errorf("flower moved to %v", f.Pos)
	}

	f.Collect()
	if f.Active() {
		t.Error("collected pickup should be inactive")
	}
}

func TestParseItemKind(t *testing.T) {
	for _, name := range []string{"coin", "mushroom", "flower"} {
		k, err := ParseItemKind(name)
		if err != nil || k.String() != name {
			t.Errorf("ParseItemKind(%q) = %v, %v", name, k, err)
		}
	}
	if _, err := ParseItemKind("star"); err == nil {
		t.Error("unknown kind should fail")
	}
}
