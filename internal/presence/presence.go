// Package presence tracks who is connected to the arcade server and what
// they are playing. It is safe for concurrent use by SSH sessions.
package presence

import (
	"sort"
	"sync"
	"time"
)

// SessionID uniquely identifies a connection.
type SessionID string

// Player describes one connected session.
type Player struct {
	Session SessionID
	User    string
	GameID  string // Empty while in the menu
	Since   time.Time
}

// Registry tracks active sessions.
type Registry struct {
	mu      sync.RWMutex
	players map[SessionID]Player
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{players: make(map[SessionID]Player)}
}

// Join records a new connection.
func (r *Registry) Join(id SessionID, user string, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[id] = Player{Session: id, User: user, Since: now}
}

// Leave forgets a connection.
func (r *Registry) Leave(id SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, id)
}

// SetGame records the game a session is playing. An empty id means the
// session went back to the menu. Unknown sessions are ignored.
func (r *Registry) SetGame(id SessionID, gameID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return
	}
	p.GameID = gameID
	r.players[id] = p
}

// Count returns the number of connected sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// Playing returns how many sessions are in each game.
func (r *Registry) Playing() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[string]int)
	for _, p := range r.players {
		if p.GameID != "" {
			counts[p.GameID]++
		}
	}
	return counts
}

// List returns the connected players, oldest connection first.
func (r *Registry) List() []Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Since.Equal(out[j].Since) {
			return out[i].Session < out[j].Session
		}
		return out[i].Since.Before(out[j].Since)
	})
	return out
}
