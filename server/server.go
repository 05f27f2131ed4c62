// Package server exposes game sessions to browsers: a form-driven page for
// the local game and websocket parties addressed by a short code.
package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"blockpuzzle/config"
	"blockpuzzle/game"
	"blockpuzzle/templates"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Server owns every party of the process.
type Server struct {
	cfg     config.Config
	catalog *game.Catalog

	partiesMu sync.Mutex
	parties   map[string]*Party
	local     *Party

	upgrader    websocket.Upgrader
	welcomeTmpl *template.Template
	indexTmpl   *template.Template
}

// New builds a server whose sessions use cfg's grid and the given catalog.
func New(cfg config.Config, catalog *game.Catalog) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		catalog:  catalog,
		parties:  make(map[string]*Party),
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}

	var err error
	s.welcomeTmpl, err = template.ParseFS(templates.FS, "welcome.html")
	if err != nil {
		return nil, fmt.Errorf("parse welcome template: %w", err)
	}
	s.indexTmpl, err = template.New("index.html").Funcs(templateFuncs).ParseFS(templates.FS, "index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	session, err := s.newSession()
	if err != nil {
		return nil, err
	}
	s.local = newParty("local", session)
	return s, nil
}

var templateFuncs = template.FuncMap{
	"seq": func(a, b int) []int {
		if b < a {
			return nil
		}
		out := make([]int, 0, b-a+1)
		for i := a; i <= b; i++ {
			out = append(out, i)
		}
		return out
	},
	"sub": func(a, b int) int {
		return a - b
	},
}

// Handler routes every endpoint of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.welcomeHandler)
	mux.HandleFunc("/game", s.indexHandler)
	mux.HandleFunc("/play", s.formPlayHandler)
	mux.HandleFunc("/reset", s.formResetHandler)
	mux.HandleFunc("/api/instructions", s.instructionsHandler)
	mux.HandleFunc("/api/party/create", s.createPartyHandler)
	mux.HandleFunc("/api/party/join", s.joinPartyHandler)
	mux.HandleFunc("/api/party/state", s.partyStateHandler)
	mux.HandleFunc("/ws/", s.wsPartyHandler)
	return mux
}

func (s *Server) newSession() (*game.Session, error) {
	session, err := game.NewSession(s.cfg.Options(s.catalog))
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return session, nil
}

// Party returns the party registered under code.
func (s *Server) Party(code string) (*Party, bool) {
	s.partiesMu.Lock()
	defer s.partiesMu.Unlock()
	p, ok := s.parties[strings.ToUpper(code)]
	return p, ok
}

// CreateParty registers a new party whose game is already started.
func (s *Server) CreateParty() (*Party, error) {
	session, err := s.newSession()
	if err != nil {
		return nil, err
	}
	session.Start()

	s.partiesMu.Lock()
	defer s.partiesMu.Unlock()
	code := generateCode()
	for s.parties[code] != nil {
		code = generateCode()
	}
	p := newParty(code, session)
	s.parties[code] = p
	return p, nil
}

func generateCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = codeCharset[rand.IntN(len(codeCharset))]
	}
	return string(b)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) instructionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"instructions": game.Instructions})
}

func (s *Server) createPartyHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.CreateParty()
	if err != nil {
		log.Printf("create party: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	log.Printf("✅ New party created: %s", p.Code)
	writeJSON(w, map[string]string{"code": p.Code})
}

func (s *Server) joinPartyHandler(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.URL.Query().Get("code"))
	if _, ok := s.Party(code); !ok {
		http.Error(w, "Party not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]string{"status": "joined", "code": code})
	log.Printf("👥 A player joined party %s", code)
}

func (s *Server) partyStateHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Party(r.URL.Query().Get("code"))
	if !ok {
		http.Error(w, "Party not found", http.StatusNotFound)
		return
	}
	writeJSON(w, p.Snapshot())
}

func (s *Server) wsPartyHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Party(strings.TrimPrefix(r.URL.Path, "/ws/"))
	if !ok {
		http.Error(w, "Party not found", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	p.attach(conn)

	go func() {
		defer p.detach(conn)
		for {
			var msg clientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			p.handle(conn, msg)
		}
	}()
}
