package platformer

import (
	"fmt"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Kind tags every collidable entity for collision dispatch.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPickup
	KindPlatform
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPickup:
		return "pickup"
	case KindPlatform:
		return "platform"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// entity is anything the collision resolver can test.
type entity interface {
	Kind() Kind
	Box() core.Box
}

// dynamic is an entity that moves and can be pushed out of solids.
type dynamic interface {
	entity
	body() *Body
	land(top float64)
	bumpSide()
}

// Platform is a static solid rectangle. It cannot change after creation.
type Platform struct {
	box core.Box
}

// NewPlatform creates a platform.
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{box: core.NewBox(x, y, w, h)}
}

// Kind implements entity.
func (p Platform) Kind() Kind { return KindPlatform }

// Box returns the platform rectangle.
func (p Platform) Box() core.Box { return p.box }

// Enemy is a Goomba-like walker.
type Enemy struct {
	Body

	active      bool
	squished    bool
	grounded    bool // A surface supported the enemy this frame
	squishTimer float64
}

// NewEnemy creates an active enemy walking left.
func NewEnemy(x, y, gravity float64, cfg config.PlatformerEnemy) *Enemy {
	return &Enemy{
		Body: Body{
			Pos:     core.Vec2{X: x, Y: y},
			Vel:     core.Vec2{X: -cfg.Speed},
			W:       cfg.Width,
			H:       cfg.Height,
			Gravity: gravity,
		},
		active: true,
	}
}

// Kind implements entity.
func (e *Enemy) Kind() Kind { return KindEnemy }

// Active reports whether the enemy is still simulated.
func (e *Enemy) Active() bool { return e.active }

// Squished reports whether the enemy was stomped.
func (e *Enemy) Squished() bool { return e.squished }

// Grounded reports whether a surface supported the enemy this frame.
func (e *Enemy) Grounded() bool { return e.grounded }

// Dangerous reports whether touching the enemy matters.
func (e *Enemy) Dangerous() bool { return e.active && !e.squished }

// Squish flattens the enemy: half height with the feet in place, no
// movement, and deactivation once duration seconds have passed.
func (e *Enemy) Squish(duration float64) {
	if e.squished || !e.active {
		return
	}
	e.squished = true
	e.resize(e.H / 2)
	e.Vel.X = 0
	e.Vel.Y = 0
	e.squishTimer = duration
}

// Update advances the enemy by dt seconds.
func (e *Enemy) Update(dt float64) {
	if !e.active {
		return
	}
	if e.squished {
		e.squishTimer -= dt
		if e.squishTimer <= 0 {
			e.active = false
		}
		return
	}
	e.grounded = false
	e.Integrate(dt)
}

func (e *Enemy) body() *Body { return &e.Body }

func (e *Enemy) land(top float64) {
	e.Pos.Y = top - e.H
	e.Vel.Y = 0
	e.grounded = true
}

func (e *Enemy) bumpSide() { e.Vel.X = -e.Vel.X }

// ItemKind is what a power-up block holds.
type ItemKind int

const (
	ItemCoin     ItemKind = iota // Currency
	ItemMushroom                 // Grow-item
	ItemFlower                   // Special-item
)

func (k ItemKind) String() string {
	switch k {
	case ItemCoin:
		return "coin"
	case ItemMushroom:
		return "mushroom"
	case ItemFlower:
		return "flower"
	default:
		return "unknown"
	}
}

// ParseItemKind maps a stage layout name to an ItemKind.
func ParseItemKind(s string) (ItemKind, error) {
	switch s {
	case "coin":
		return ItemCoin, nil
	case "mushroom":
		return ItemMushroom, nil
	case "flower":
		return ItemFlower, nil
	default:
		return 0, fmt.Errorf("unknown block kind %q", s)
	}
}

// bumpDuration is how long a block shows its hit animation.
const bumpDuration = 0.15

// Reward is produced by activating a block.
type Reward struct {
	Kind ItemKind
	// X, Y is the top-left corner for a spawned pickup, just above the block.
	X, Y float64
}

// Block is a one-shot power-up block. It stays solid after use.
type Block struct {
	box  core.Box
	kind ItemKind
	used bool
	bump float64
}

// NewBlock creates an unused block.
func NewBlock(x, y, size float64, kind ItemKind) *Block {
	return &Block{box: core.NewBox(x, y, size, size), kind: kind}
}

// Kind implements entity.
func (b *Block) Kind() Kind { return KindBlock }

// Box returns the block rectangle.
func (b *Block) Box() core.Box { return b.box }

// Item returns the item the block was placed with.
func (b *Block) Item() ItemKind { return b.kind }

// Used reports whether the block was already activated.
func (b *Block) Used() bool { return b.used }

// Bump returns the remaining hit animation time.
func (b *Block) Bump() float64 { return b.bump }

// Activate returns the block's reward the first time and nil afterwards.
// A mushroom block activated by a big player yields a flower.
func (b *Block) Activate(playerBig bool) *Reward {
	if b.used {
		return nil
	}
	b.used = true
	b.bump = bumpDuration

	kind := b.kind
	if kind == ItemMushroom && playerBig {
		kind = ItemFlower
	}
	return &Reward{Kind: kind, X: b.box.X, Y: b.box.Y - b.box.H}
}

// Update advances the hit animation.
func (b *Block) Update(dt float64) {
	if b.bump > 0 {
		b.bump -= dt
		if b.bump < 0 {
			b.bump = 0
		}
	}
}

// Pickup is a spawned item waiting to be collected.
type Pickup struct {
	Body

	kind   ItemKind
	active bool
}

// NewPickup spawns the item of a reward. Mushrooms walk right under
// gravity; flowers stay where they appear.
func NewPickup(r Reward, gravity float64, cfg config.PlatformerPickup) *Pickup {
	p := &Pickup{
		Body: Body{
			Pos: core.Vec2{X: r.X, Y: r.Y},
			W:   cfg.Size,
			H:   cfg.Size,
		},
		kind:   r.Kind,
		active: true,
	}
	if r.Kind == ItemMushroom {
		p.Vel.X = cfg.Speed
		p.Gravity = gravity
	}
	return p
}

// Kind implements entity.
func (p *Pickup) Kind() Kind { return KindPickup }

// Item returns what the pickup is.
func (p *Pickup) Item() ItemKind { return p.kind }

// Active reports whether the pickup can still be collected.
func (p *Pickup) Active() bool { return p.active }

// Collect deactivates the pickup.
func (p *Pickup) Collect() { p.active = false }

// Update advances the pickup by dt seconds.
func (p *Pickup) Update(dt float64) {
	if !p.active {
		return
	}
	p.Integrate(dt)
}

func (p *Pickup) body() *Body { return &p.Body }

func (p *Pickup) land(top float64) {
	p.Pos.Y = top - p.H
	p.Vel.Y = 0
}

func (p *Pickup) bumpSide() { p.Vel.X = -p.Vel.X }
