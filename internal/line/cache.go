package line

import (
	"strconv"
	"strings"
	"sync"

	"github.com/kpitt/nonogram/internal/clue"
)

// caches holds one lineCache per Method (spec.md §4.3 "Caching": "a
// per-algorithm cache keyed by (clue fingerprint, input line fingerprint)").
// Indexed directly by Method's int value.
var caches = [...]*lineCache{
	PartialMatch:          newLineCache(),
	ReverseTracking:       newLineCache(),
	ReverseTrackingColor:  newLineCache(),
	Simpson:               newLineCache(),
	BGU:                   newLineCache(),
	BGUColor:              newLineCache(),
	Efficient:             newLineCache(),
	EfficientColor:        newLineCache(),
}

const (
	cacheInitialCap = 256
	cacheCeiling    = 1 << 16
)

type cacheEntry struct {
	line Line
	err  error
}

// lineCache is a bounded, per-algorithm memo of Solve results. Capacity
// doubles on overflow up to cacheCeiling entries; once the ceiling is hit,
// the whole map is cleared rather than evicted piecemeal (spec.md §4.3:
// "bounded capacity, doubling on overflow up to a ceiling, then a wholesale
// clear"). Negative (ErrNoCompletion) results are cached too, since a
// contradictory line stays contradictory under the same clue.
type lineCache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
	cap  int
}

func newLineCache() *lineCache {
	return &lineCache{data: make(map[string]cacheEntry, cacheInitialCap), cap: cacheInitialCap}
}

func (lc *lineCache) get(c clue.Clue, in Line) (cacheEntry, bool) {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	entry, ok := lc.data[cacheKey(c, in)]
	return entry, ok
}

func (lc *lineCache) put(c clue.Clue, in Line, out Line, err error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if len(lc.data) >= lc.cap {
		if lc.cap >= cacheCeiling {
			lc.data = make(map[string]cacheEntry, cacheInitialCap)
		} else {
			lc.cap *= 2
		}
	}
	lc.data[cacheKey(c, in)] = cacheEntry{line: out, err: err}
}

// cacheKey fingerprints (c, in) as a string: the clue's block list plus the
// line's current candidate masks, both of which fully determine a Solve
// result for a given algorithm.
func cacheKey(c clue.Clue, in Line) string {
	var b strings.Builder
	b.WriteString(c.GoString())
	b.WriteByte('|')
	for i, m := range in.Cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(m), 16))
	}
	return b.String()
}
