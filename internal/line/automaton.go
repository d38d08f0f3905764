package line

import (
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

// Automaton is the deterministic state machine described in spec.md
// §4.2(a): its accepted language is exactly the complete lines matching one
// (concrete-size) clue. The partial-match and reverse-tracking solvers
// build a fresh automaton on every solve call; automata are not cached
// (only whole Solve results are, in cache.go).
//
// The machine is deterministic per (state, color) pair, but a line whose
// cells hold multiple surviving candidates can still reach several states
// at a given position — that multi-state reachability, not the transition
// function itself, is what the (b) reverse-tracking pass over the forward
// frontier exploits.
type Automaton struct {
	trans  []map[cell.Mask]int
	accept int
}

// NewAutomaton builds the automaton for a clue whose blocks all have
// concrete (non-blotted) sizes. Callers with blotted blocks must expand to
// concrete sizes first (see ExpandBlotted).
func NewAutomaton(c clue.Clue) *Automaton {
	a := &Automaton{}
	start := a.newState()

	cur := start
	a.addTrans(cur, cell.Space, cur) // optional leading space

	for i, b := range c.Blocks {
		if i > 0 && c.Blocks[i-1].Color == b.Color {
			// Mandatory single space between same-colored blocks, then any
			// number of additional optional spaces.
			gap := a.newState()
			a.addTrans(cur, cell.Space, gap)
			a.addTrans(gap, cell.Space, gap)
			cur = gap
		}

		size := b.Size.Value()
		for unit := 0; unit < size; unit++ {
			next := a.newState()
			a.addTrans(cur, b.Color, next)
			cur = next
		}

		isLast := i == len(c.Blocks)-1
		differsFromNext := isLast || c.Blocks[i+1].Color != b.Color
		if differsFromNext {
			// Optional space before the next (differently-colored) block,
			// or trailing space after the last block.
			a.addTrans(cur, cell.Space, cur)
		}
	}

	a.accept = cur
	return a
}

func (a *Automaton) newState() int {
	a.trans = append(a.trans, make(map[cell.Mask]int))
	return len(a.trans) - 1
}

func (a *Automaton) addTrans(from int, color cell.Mask, to int) {
	a.trans[from][color] = to
}

// Start returns the automaton's initial state.
func (a *Automaton) Start() int {
	return 0
}

// Next returns the state reached by consuming color from state s, if any.
func (a *Automaton) Next(s int, color cell.Mask) (int, bool) {
	next, ok := a.trans[s][color]
	return next, ok
}

// canComplete reports whether the automaton admits some complete line of
// length len(cells), where cells[fixedPos] is forced to fixedColor and every
// other position is restricted to its given candidate set. Used by the
// partial-match solver (a); O(length * number of states) per call.
func (a *Automaton) canComplete(cells []cell.Mask, fixedPos int, fixedColor cell.Mask) bool {
	reachable := map[int]bool{a.Start(): true}
	for i, candidates := range cells {
		if i == fixedPos {
			candidates = fixedColor
		}
		next := make(map[int]bool)
		for s := range reachable {
			for _, c := range candidates.Members() {
				if ns, ok := a.Next(s, c); ok {
					next[ns] = true
				}
			}
		}
		reachable = next
		if len(reachable) == 0 {
			return false
		}
	}
	return reachable[a.accept]
}
