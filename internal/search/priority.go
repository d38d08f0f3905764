package search

import "github.com/kpitt/nonogram/internal/board"

type cellPos struct {
	row, col int
}

// solvedNeighbours counts the orthogonally adjacent cells already solved —
// the "local solved-neighbour count" term of spec.md §4.4.1's priority
// function.
func solvedNeighbours(b *board.Board, row, col int) int {
	count := 0
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= b.Height || c < 0 || c >= b.Width {
			continue
		}
		if b.Cell(r, c).IsSolved() {
			count++
		}
	}
	return count
}

// lineSolvedRate returns the fraction of already-solved cells in row index
// (isRow) or column index (!isRow) — the "solution rates of its row and
// column" term shared by §4.4.1's probe priority and §4.4.2's DFS bias.
func lineSolvedRate(b *board.Board, index int, isRow bool) float64 {
	var total, solved int
	if isRow {
		total = b.Width
		for j := 0; j < total; j++ {
			if b.Cell(index, j).IsSolved() {
				solved++
			}
		}
	} else {
		total = b.Height
		for i := 0; i < total; i++ {
			if b.Cell(i, index).IsSolved() {
				solved++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(solved) / float64(total)
}
