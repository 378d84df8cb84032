package scheduling

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

// seededSequence is a tiny splitmix64-style generator seeded from a
// string. It never touches global rand state, so the same seed yields
// the same draws across processes and platforms — the property that
// makes random-selection rules reproducible for a given (property, date).
type seededSequence struct {
	state uint64
}

func newSeededSequence(seed string) *seededSequence {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return &seededSequence{state: h.Sum64()}
}

// selectionSeed derives the canonical seed string for a property's
// random-selection rules on a given date.
func selectionSeed(propertyID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s|%s", propertyID, date.Format("2006-01-02"))
}

// next advances the sequence one step (splitmix64 finalizer).
func (s *seededSequence) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// intn returns a value in [0, n). n must be positive.
func (s *seededSequence) intn(n int) int {
	return int(s.next() % uint64(n))
}

// pickDistinct draws `count` distinct indices in [0, n) without
// replacement, redrawing on collision until enough are collected.
func (s *seededSequence) pickDistinct(n, count int) []int {
	if count > n {
		count = n
	}
	seen := make(map[int]struct{}, count)
	out := make([]int, 0, count)
	for len(out) < count {
		i := s.intn(n)
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	return out
}
