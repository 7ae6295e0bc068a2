package platformer

import "github.com/vovakirdan/canvas-arcade/internal/core"

// Event names a gameplay event that happened during a frame.
type Event string

const (
	EventJump       Event = "jump"
	EventCoin       Event = "coin"
	EventBlock      Event = "block"       // Block activated
	EventSpawn      Event = "spawn"       // Pickup appeared
	EventGrow       Event = "grow"        // Pickup made the player big
	EventItem       Event = "item"        // Pickup scored while big
	EventSquish     Event = "squish"      // Enemy stomped
	EventLifeLost   Event = "life-lost"   // Enemy hit or fall
	EventGameOver   Event = "game-over"   // Last life lost
	EventRespawn    Event = "respawn"     // Lock ended, play resumes
	EventStageReset Event = "stage-reset" // Lock after game over ended
)

// PlayerView is a read-only copy of the player.
type PlayerView struct {
	Box       core.Box
	Vel       core.Vec2
	Size      SizeMode
	Posture   Posture
	Facing    Facing
	Airborne  bool
	Grounded  bool
	AnimFrame int
}

// EnemyView is a read-only copy of an enemy.
type EnemyView struct {
	Box      core.Box
	Vel      core.Vec2
	Active   bool
	Squished bool
	Grounded bool
}

// BlockView is a read-only copy of a block.
type BlockView struct {
	Box  core.Box
	Item ItemKind
	Used bool
	Bump float64
}

// PickupView is a read-only copy of a pickup.
type PickupView struct {
	Box    core.Box
	Vel    core.Vec2
	Item   ItemKind
	Active bool
}

// Snapshot is everything a presentation layer needs for one frame.
// It shares no memory with the session.
type Snapshot struct {
	Frame     uint64
	Player    PlayerView
	Platforms []core.Box
	Blocks    []BlockView
	Enemies   []EnemyView
	Pickups   []PickupView
	CameraX   float64
	Score     int
	Coins     int
	Lives     int
	GameOver  bool
	Locked    bool
	LockLeft  float64 // Seconds until play resumes
	Ended     bool
	Events    []Event
}

func (s *Session) snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		Frame: s.frame,
		Player: PlayerView{
			Box:       p.Box(),
			Vel:       p.Vel,
			Size:      p.Size(),
			Posture:   p.Posture(),
			Facing:    p.Facing(),
			Airborne:  p.Airborne(),
			Grounded:  p.Grounded(),
			AnimFrame: p.AnimFrame(),
		},
		Platforms: make([]core.Box, len(s.platforms)),
		Blocks:    make([]BlockView, len(s.blocks)),
		Enemies:   make([]EnemyView, len(s.enemies)),
		Pickups:   make([]PickupView, len(s.pickups)),
		CameraX:   s.cameraX,
		Score:     s.score,
		Coins:     s.coins,
		Lives:     s.lives,
		GameOver:  s.gameOver,
		Locked:    s.lock > 0,
		LockLeft:  s.lock,
		Ended:     s.ended,
		Events:    append([]Event(nil), s.events...),
	}
	for i, pl := range s.platforms {
		snap.Platforms[i] = pl.Box()
	}
	for i, b := range s.blocks {
		snap.Blocks[i] = BlockView{Box: b.Box(), Item: b.Item(), Used: b.Used(), Bump: b.Bump()}
	}
	for i, e := range s.enemies {
		snap.Enemies[i] = EnemyView{
			Box:      e.Box(),
			Vel:      e.Vel,
			Active:   e.Active(),
			Squished: e.Squished(),
			Grounded: e.Grounded(),
		}
	}
	for i, pk := range s.pickups {
		snap.Pickups[i] = PickupView{Box: pk.Box(), Vel: pk.Vel, Item: pk.Item(), Active: pk.Active()}
	}
	return snap
}

// HasEvent reports whether the frame produced ev.
func (s Snapshot) HasEvent(ev Event) bool {
	for _, e := range s.Events {
		if e == ev {
			return true
		}
	}
	return false
}
