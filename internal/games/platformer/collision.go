package platformer

import (
	"math"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Contact classifies how two overlapping entities touched.
type Contact int

const (
	ContactNone      Contact = iota
	ContactSquish            // Player came down on top of an enemy
	ContactHit               // Any other player/enemy overlap
	ContactFromBelow         // Mover struck a block from underneath
	ContactSide              // Push out horizontally
	ContactVertical          // Push out vertically
)

func (c Contact) String() string {
	switch c {
	case ContactSquish:
		return "squish"
	case ContactHit:
		return "hit"
	case ContactFromBelow:
		return "from-below"
	case ContactSide:
		return "side"
	case ContactVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Block hit heuristics, as fractions of the mover width and block height.
const (
	belowRisingOverlap = 0.2 // Horizontal overlap needed while moving up
	belowBandOverlap   = 0.4 // Horizontal overlap needed inside the bottom band
	belowBand          = 0.8 // Top of the bottom band, from the block top
)

// ClassifyStomp classifies a player/enemy pair. It is a squish when the
// player is falling and its bottom edge is above the enemy's vertical
// midpoint; every other overlap is a hit.
func ClassifyStomp(player core.Box, vy float64, enemy core.Box) Contact {
	if !player.Overlaps(enemy) {
		return ContactNone
	}
	if vy > 0 && player.Bottom() < enemy.MidY() {
		return ContactSquish
	}
	return ContactHit
}

// ClassifyBlockContact classifies a mover overlapping a block.
// The from-below test is deliberately forgiving: either the mover is rising
// with a fifth of its width under the block, or its top is inside the
// bottom fifth of the block with two fifths of its width under it.
func ClassifyBlockContact(mover core.Box, vy float64, block core.Box) Contact {
	if !mover.Overlaps(block) {
		return ContactNone
	}
	ox, oy := mover.Overlap(block)

	rising := vy < 0 && ox >= belowRisingOverlap*mover.W
	inBand := mover.Y >= block.Y+belowBand*block.H && ox >= belowBandOverlap*mover.W
	if rising || inBand {
		return ContactFromBelow
	}
	if ox < oy {
		return ContactSide
	}
	return ContactVertical
}

// onPatrolEdge reports whether an enemy standing on p is at the edge it
// is walking towards.
func onPatrolEdge(e core.Box, vx float64, p core.Box, feetTolerance, margin float64) bool {
	if math.Abs(e.Bottom()-p.Y) > feetTolerance {
		return false
	}
	if e.Right() <= p.X || e.X >= p.Right() {
		return false
	}
	switch {
	case vx < 0:
		return e.X <= p.X+margin
	case vx > 0:
		return e.Right() >= p.Right()-margin
	}
	return false
}

// pushOut moves a mover out of a solid along the axis of least penetration.
func pushOut(m dynamic, solid core.Box, c Contact) {
	b := m.body()
	box := b.Box()
	switch c {
	case ContactSide:
		if box.CenterX() < solid.CenterX() {
			b.Pos.X = solid.X - b.W
		} else {
			b.Pos.X = solid.Right()
		}
		m.bumpSide()
	case ContactVertical:
		if box.MidY() < solid.MidY() {
			m.land(solid.Y)
		} else {
			b.Pos.Y = solid.Bottom()
			b.Vel.Y = 0
		}
	}
}

type kindPair struct {
	mover, other Kind
}

// collisionRule resolves one ordered pair. Rules do their own overlap test
// because enemy patrol also reacts to platforms it only touches.
type collisionRule func(s *Session, mover, other entity)

var collisionRules = map[kindPair]collisionRule{
	{KindPlayer, KindPlatform}: landOnPlatform,
	{KindPickup, KindPlatform}: landOnPlatform,
	{KindEnemy, KindPlatform}:  patrolPlatform,
	{KindPlayer, KindBlock}:    hitBlock,
	{KindEnemy, KindBlock}:     hitBlock,
	{KindPickup, KindBlock}:    hitBlock,
	{KindPlayer, KindPickup}:   collectPickup,
	{KindPlayer, KindEnemy}:    touchEnemy,
}

// collide dispatches a pair to its rule. Pairs without a rule are ignored.
func (s *Session) collide(mover, other entity) {
	if rule, ok := collisionRules[kindPair{mover.Kind(), other.Kind()}]; ok {
		rule(s, mover, other)
	}
}

// landOnPlatform puts any overlapping mover on top of the platform.
// Platform sides are not solid.
func landOnPlatform(s *Session, mover, other entity) {
	top := other.Box()
	if mover.Box().Overlaps(top) {
		mover.(dynamic).land(top.Y)
	}
}

func patrolPlatform(s *Session, mover, other entity) {
	e := mover.(*Enemy)
	p := other.Box()
	if onPatrolEdge(e.Box(), e.Vel.X, p, s.cfg.Enemy.FeetTolerance, s.cfg.Enemy.EdgeMargin) {
		e.Vel.X = -e.Vel.X
	}
	landOnPlatform(s, mover, other)
}

// hitBlock resolves a mover against a block. Only the player activates
// blocks from below; everything else is pushed out.
func hitBlock(s *Session, mover, other entity) {
	m := mover.(dynamic)
	block := other.(*Block)
	b := m.body()

	c := ClassifyBlockContact(b.Box(), b.Vel.Y, block.Box())
	switch c {
	case ContactNone:
		return
	case ContactFromBelow:
		if p, ok := mover.(*Player); ok {
			s.activateBlock(p, block)
			b.Pos.Y = block.Box().Bottom()
			b.Vel.Y = 0
			return
		}
		// Pickups and enemies have no use for a block's underside.
		c = ContactVertical
		if ox, oy := b.Box().Overlap(block.Box()); ox < oy {
			c = ContactSide
		}
	case ContactSide:
		// A mover that was wholly above the block before this frame is
		// landing on it, however little of its width still overlaps.
		if b.Vel.Y > 0 && b.Feet()-b.Vel.Y*s.dt <= block.Box().Y {
			c = ContactVertical
		}
	}
	pushOut(m, block.Box(), c)
}

func collectPickup(s *Session, mover, other entity) {
	p := mover.(*Player)
	item := other.(*Pickup)
	if !item.Active() || !p.Box().Overlaps(item.Box()) {
		return
	}
	item.Collect()
	if p.Grow() {
		s.emit(EventGrow)
		return
	}
	s.score += s.cfg.Gameplay.ItemPoints
	s.emit(EventItem)
}

func touchEnemy(s *Session, mover, other entity) {
	p := mover.(*Player)
	e := other.(*Enemy)
	if !e.Dangerous() {
		return
	}
	switch ClassifyStomp(p.Box(), p.Vel.Y, e.Box()) {
	case ContactSquish:
		e.Squish(s.cfg.Enemy.SquishDuration)
		p.Vel.Y = s.cfg.Player.StompBounce
		s.score += s.cfg.Gameplay.StompPoints
		s.emit(EventSquish)
	case ContactHit:
		s.loseLife()
	}
}
