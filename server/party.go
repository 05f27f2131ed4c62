package server

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"blockpuzzle/game"
)

// clientMessage is what a browser sends over the party websocket.
type clientMessage struct {
	Type string `json:"type"` // "place", "restart", "preview"
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// serverMessage is pushed to browsers.
type serverMessage struct {
	Type    string            `json:"type"` // "state", "placed", "rejected", "preview"
	State   *game.Snapshot    `json:"state,omitempty"`
	Result  *game.PlaceResult `json:"result,omitempty"`
	Preview *game.Preview     `json:"preview,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// Party is one game session plus the websockets watching it. All access to
// the session goes through mu.
type Party struct {
	Code      string
	CreatedAt time.Time

	mu      sync.Mutex
	session *game.Session
	clients map[*websocket.Conn]bool
}

func newParty(code string, session *game.Session) *Party {
	return &Party{
		Code:      code,
		CreatedAt: time.Now(),
		session:   session,
		clients:   make(map[*websocket.Conn]bool),
	}
}

// Snapshot returns the current state of the party's session.
func (p *Party) Snapshot() game.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session.Snapshot()
}

// Place drops the active piece and notifies every watcher.
func (p *Party) Place(row, col int) (game.PlaceResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	res, err := p.session.Place(row, col)
	if err != nil {
		return res, err
	}
	p.broadcastLocked(serverMessage{Type: "placed", Result: &res})
	p.broadcastStateLocked()
	return res, nil
}

// Restart starts a new game and notifies every watcher.
func (p *Party) Restart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.session.Restart()
	p.broadcastStateLocked()
}

func (p *Party) attach(conn *websocket.Conn) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clients[conn] = true
	snap := p.session.Snapshot()
	_ = conn.WriteJSON(serverMessage{Type: "state", State: &snap})
}

func (p *Party) detach(conn *websocket.Conn) {
	p.mu.Lock()
	delete(p.clients, conn)
	p.mu.Unlock()
	conn.Close()
}

// handle applies one client message. Rejections and previews go back to the
// sender only.
func (p *Party) handle(conn *websocket.Conn, msg clientMessage) {
	switch msg.Type {
	case "place":
		_, err := p.Place(msg.Row, msg.Col)
		if err != nil {
			p.reply(conn, serverMessage{Type: "rejected", Error: rejection(err)})
		}
	case "restart", "start":
		p.Restart()
	case "preview":
		p.mu.Lock()
		pv := p.session.Preview(msg.Row, msg.Col)
		_ = conn.WriteJSON(serverMessage{Type: "preview", Preview: &pv})
		p.mu.Unlock()
	default:
		p.reply(conn, serverMessage{Type: "rejected", Error: "unknown message type " + msg.Type})
	}
}

func (p *Party) reply(conn *websocket.Conn, msg serverMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = conn.WriteJSON(msg)
}

func (p *Party) broadcastStateLocked() {
	snap := p.session.Snapshot()
	p.broadcastLocked(serverMessage{Type: "state", State: &snap})
}

func (p *Party) broadcastLocked(msg serverMessage) {
	for c := range p.clients {
		if err := c.WriteJSON(msg); err != nil {
			log.Printf("party %s: write to client failed: %v", p.Code, err)
		}
	}
}

// rejection is the user-facing text for a refused move.
func rejection(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidPlacement):
		return "Invalid placement!"
	case errors.Is(err, game.ErrNotPlaying):
		return "The game is over. Restart to play again."
	default:
		return err.Error()
	}
}
