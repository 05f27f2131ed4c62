package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"blockpuzzle/game"
)

// pageData feeds index.html and welcome.html.
type pageData struct {
	game.Snapshot
	Notice       string
	Instructions string
}

func (s *Server) welcomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := s.welcomeTmpl.Execute(w, pageData{Instructions: game.Instructions}); err != nil {
		log.Printf("welcome template execute error: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// indexHandler renders the local game. A game still in the menu shows the
// welcome page instead.
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.local.Snapshot()
	if snap.State == game.Menu {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	data := pageData{Snapshot: snap, Instructions: game.Instructions}
	switch r.URL.Query().Get("notice") {
	case "invalid":
		data.Notice = "Invalid placement!"
	case "over":
		data.Notice = "No room left for the next piece."
	}
	if err := s.indexTmpl.Execute(w, data); err != nil {
		log.Printf("template execute error: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// formPlayHandler places the active piece of the local game at the posted
// row and column.
func (s *Server) formPlayHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	var row, col int
	if _, err := fmt.Sscanf(r.FormValue("row"), "%d", &row); err != nil {
		http.Error(w, "Invalid row", http.StatusBadRequest)
		return
	}
	if _, err := fmt.Sscanf(r.FormValue("col"), "%d", &col); err != nil {
		http.Error(w, "Invalid column", http.StatusBadRequest)
		return
	}

	res, err := s.local.Place(row, col)
	switch {
	case errors.Is(err, game.ErrInvalidPlacement):
		http.Redirect(w, r, "/game?notice=invalid", http.StatusSeeOther)
	case err != nil:
		http.Redirect(w, r, "/game", http.StatusSeeOther)
	case res.GameOver:
		http.Redirect(w, r, "/game?notice=over", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/game", http.StatusSeeOther)
	}
}

// formResetHandler starts or restarts the local game.
func (s *Server) formResetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	s.local.Restart()
	http.Redirect(w, r, "/game", http.StatusSeeOther)
}
