package line

import "github.com/kpitt/nonogram/internal/clue"

// Solver is the contract every line-solving algorithm satisfies, per
// spec.md §4.2: a pure refinement function that never adds candidates and
// signals ErrNoCompletion (wrapped in a *ContradictionError) when no valid
// completion of in exists.
type Solver interface {
	// solveConcrete assumes c has no blotted blocks; blotted expansion is
	// applied once, uniformly, by Solve.
	solveConcrete(c clue.Clue, in Line) (Line, error)
}

// Method names the five algorithms by the external-interface selector from
// spec.md §6.
type Method int

const (
	PartialMatch Method = iota
	ReverseTracking
	ReverseTrackingColor
	Simpson
	BGU
	BGUColor
	Efficient
	EfficientColor
)

func (m Method) String() string {
	switch m {
	case PartialMatch:
		return "partial_match"
	case ReverseTracking:
		return "reverse_tracking"
	case ReverseTrackingColor:
		return "reverse_tracking_color"
	case Simpson:
		return "simpson"
	case BGU:
		return "bgu"
	case BGUColor:
		return "bgu_color"
	case Efficient:
		return "efficient"
	case EfficientColor:
		return "efficient_color"
	default:
		return "unknown"
	}
}

func solverFor(m Method) Solver {
	switch m {
	case PartialMatch:
		return partialMatchSolver{}
	case ReverseTracking, ReverseTrackingColor:
		return reverseTrackingSolver{}
	case Simpson:
		return simpsonSolver{}
	case BGU, BGUColor:
		return bguSolver{}
	case Efficient, EfficientColor:
		return efficientSolver{}
	default:
		return reverseTrackingSolver{}
	}
}

// Solve runs the named method against (c, in), applying blotted-block
// expansion uniformly first (spec.md §4.2(c)/§9), and caching results per
// algorithm (spec.md §4.2 "Caching").
//
// It is the entry point named `line_solve` in spec.md §6.
func Solve(method Method, c clue.Clue, in Line) (Line, error) {
	if cached, ok := caches[method].get(c, in); ok {
		if cached.err != nil {
			return Line{}, cached.err
		}
		return cached.line, nil
	}

	out, err := solveWithExpansion(solverFor(method), c, in)
	caches[method].put(c, in, out, err)
	return out, err
}

func solveWithExpansion(s Solver, c clue.Clue, in Line) (Line, error) {
	if !c.HasBlotted() {
		return s.solveConcrete(c, in)
	}

	variants := expandBlotted(c, in.Len())
	if len(variants) == 0 {
		return Line{}, contradiction(c, in)
	}

	var union Line
	first := true
	for _, variant := range variants {
		refined, err := s.solveConcrete(variant, in)
		if err != nil {
			continue
		}
		if first {
			union = refined.Clone()
			union.Clue = c
			first = false
			continue
		}
		for i := range union.Cells {
			union.Cells[i] |= refined.Cells[i]
		}
	}
	if first {
		// Every concrete-size combination was rejected.
		return Line{}, contradiction(c, in)
	}
	return union, nil
}
