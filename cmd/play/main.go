// Command play runs one game in the terminal: it prints the board and the
// active piece, and reads "row col" drops from standard input.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"blockpuzzle/config"
	"blockpuzzle/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	session, err := game.NewSession(cfg.Options(catalog))
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	if err := run(session, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(s *game.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, game.Instructions)
	s.Start()
	render(s, out)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		case "r", "restart":
			s.Restart()
			render(s, out)
			continue
		}

		var row, col int
		if _, err := fmt.Sscanf(line, "%d %d", &row, &col); err != nil {
			fmt.Fprintln(out, "enter: <row> <col>, r to restart, q to quit")
			continue
		}
		res, err := s.Place(row, col)
		switch {
		case errors.Is(err, game.ErrInvalidPlacement):
			fmt.Fprintln(out, "Invalid placement!")
			continue
		case errors.Is(err, game.ErrNotPlaying):
			fmt.Fprintln(out, "Game over. r to restart, q to quit")
			continue
		}
		if res.Lines > 0 {
			fmt.Fprintf(out, "cleared %d line(s), +%d\n", res.Lines, res.Points)
		}
		render(s, out)
		if res.GameOver {
			fmt.Fprintf(out, "Game over! Final score: %d\n", res.Score)
		}
	}
	return sc.Err()
}

func render(s *game.Session, out io.Writer) {
	fmt.Fprintf(out, "score %d  best %d\n", s.Score(), s.Best())
	fmt.Fprint(out, s.Board())
	if s.State() != game.Playing {
		return
	}
	fmt.Fprintf(out, "next: %s\n", s.Piece().Name())
	for _, row := range s.Piece().Matrix() {
		for _, v := range row {
			if v == 1 {
				fmt.Fprint(out, "#")
			} else {
				fmt.Fprint(out, " ")
			}
		}
		fmt.Fprintln(out)
	}
}
