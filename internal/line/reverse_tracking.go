package line

import (
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

// reverse_tracking_color is named separately in the external interface
// (spec.md §6) but the construction generalizes directly over an arbitrary
// palette bitmask, so one implementation serves both `reverse_tracking` and
// `reverse_tracking_color` method names (see solverFor).
type reverseTrackingSolver struct{}

type backEdge struct {
	from  int
	color cell.Mask
}

// solveConcrete implements spec.md §4.2(b): a forward pass computing the
// set of automaton states reachable after each prefix (remembering the
// back-edges that produced each state), followed by a backward pass that
// unions the colors on every surviving back-edge. Linear in N·S.
func (reverseTrackingSolver) solveConcrete(c clue.Clue, in Line) (Line, error) {
	aut := NewAutomaton(c)
	n := in.Len()

	// reachable[i] holds the automaton states reachable after consuming the
	// first i cells; backlinks[i] maps a state in reachable[i] to the
	// (previous state, color) pairs that reached it.
	reachable := make([]map[int]bool, n+1)
	backlinks := make([]map[int][]backEdge, n+1)
	reachable[0] = map[int]bool{aut.Start(): true}
	backlinks[0] = map[int][]backEdge{}

	for i := 0; i < n; i++ {
		reachable[i+1] = make(map[int]bool)
		backlinks[i+1] = make(map[int][]backEdge)
		for s := range reachable[i] {
			for _, color := range in.Cells[i].Members() {
				ns, ok := aut.Next(s, color)
				if !ok {
					continue
				}
				reachable[i+1][ns] = true
				backlinks[i+1][ns] = append(backlinks[i+1][ns], backEdge{from: s, color: color})
			}
		}
	}

	if !reachable[n][aut.accept] {
		return Line{}, contradiction(c, in)
	}

	out := in.Clone()
	out.Clue = c
	for i := range out.Cells {
		out.Cells[i] = 0
	}

	active := map[int]bool{aut.accept: true}
	for i := n; i > 0; i-- {
		nextActive := make(map[int]bool)
		for s := range active {
			for _, edge := range backlinks[i][s] {
				out.Cells[i-1] |= edge.color
				nextActive[edge.from] = true
			}
		}
		active = nextActive
	}

	for _, m := range out.Cells {
		if m == 0 {
			// No surviving back-edge reached this cell: unreachable,
			// meaning the original candidate set was already contradictory
			// at this position (shouldn't happen given the forward check
			// above succeeded, but guard defensively).
			return Line{}, contradiction(c, in)
		}
	}

	return out, nil
}
