package game

// Sweep records the lines removed by one ClearLines pass.
type Sweep struct {
	Rows []int `json:"rows"`
	Cols []int `json:"cols"`
}

// Lines is the number of cleared lines. A row and a column that cross count
// as two.
func (s Sweep) Lines() int {
	return len(s.Rows) + len(s.Cols)
}

// ClearLines empties every full row first, then every full column. Cells
// vacated by the row pass still count as occupied when columns are checked,
// so a row and a column completed by the same drop are both cleared.
func ClearLines(g *Grid) Sweep {
	s := Sweep{Rows: []int{}, Cols: []int{}}
	vacated := make([]bool, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		if g.RowFull(r) {
			g.ClearRow(r)
			vacated[r] = true
			s.Rows = append(s.Rows, r)
		}
	}
	for c := 0; c < g.Cols(); c++ {
		if colFull(g, c, vacated) {
			g.ClearCol(c)
			s.Cols = append(s.Cols, c)
		}
	}
	return s
}

func colFull(g *Grid, col int, vacated []bool) bool {
	for r := 0; r < g.Rows(); r++ {
		if !vacated[r] && g.Get(r, col) != Filled {
			return false
		}
	}
	return true
}
