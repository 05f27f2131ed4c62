package game

// FirstValidMove scans anchors row by row and returns the first one where p
// can be placed.
func FirstValidMove(g *Grid, p Piece) (Point, bool) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if CanPlace(g, p, r, c) {
				return Point{Row: r, Col: c}, true
			}
		}
	}
	return Point{}, false
}

// HasAnyValidMove reports whether p fits anywhere on g.
func HasAnyValidMove(g *Grid, p Piece) bool {
	_, ok := FirstValidMove(g, p)
	return ok
}
