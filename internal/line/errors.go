package line

import (
	"errors"
	"fmt"

	"github.com/kpitt/nonogram/internal/clue"
)

// ErrNoCompletion is the sentinel wrapped by ContradictionError: spec.md
// §7's LineContradiction kind. It is the value every line solver's cache
// uses as its "no completion exists" negative entry (spec.md §4.2:
// "value = refined line or a negative sentinel").
var ErrNoCompletion = errors.New("line: no completion satisfies description")

// ContradictionError carries the description and input line that produced
// ErrNoCompletion, for diagnostics (spec.md §7: "carries the description and
// input line for diagnostics").
type ContradictionError struct {
	Clue  clue.Clue
	Input Line
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("line: clue %v has no completion consistent with input", e.Clue.Blocks)
}

func (e *ContradictionError) Unwrap() error {
	return ErrNoCompletion
}

func contradiction(c clue.Clue, in Line) error {
	return &ContradictionError{Clue: c, Input: in}
}
