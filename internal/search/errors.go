package search

import "errors"

// ErrUnsolvable is spec.md §7's Unsolvable kind: "search exhausted with no
// solution and puzzle was not already complete; surfaced." It is also
// returned immediately, without running DFS, when root-level probing empties
// some cell's candidate set entirely (§4.5: "both the two color candidates
// of some cell at the root level are contradictory").
var ErrUnsolvable = errors.New("search: puzzle has no solution")

// ErrBoardContradiction is spec.md §4.5's BoardContradiction kind:
// "speculative state proved infeasible; used only inside search, never
// surfaces to callers." Search converts it to ErrUnsolvable if it occurs
// before any DFS commitment; DFS itself treats it as a normal branch
// failure and never lets it escape Search.
var ErrBoardContradiction = errors.New("search: speculative board state is infeasible")
