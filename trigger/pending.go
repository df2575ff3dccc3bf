package trigger

import (
	"sort"

	"github.com/lixenwraith/polyrhythm/music"
)

// pendingTrigger is a quantized trigger awaiting its grid point. The note
// is snapshotted at creation; later spec changes do not affect it.
type pendingTrigger struct {
	event     Event
	note      music.Note
	executeAt float64
}

// pendingQueue keeps pending triggers ordered by execution time
type pendingQueue []pendingTrigger

func (q *pendingQueue) push(p pendingTrigger) {
	i := sort.Search(len(*q), func(i int) bool {
		return (*q)[i].executeAt > p.executeAt
	})
	*q = append(*q, pendingTrigger{})
	copy((*q)[i+1:], (*q)[i:])
	(*q)[i] = p
}

func (q *pendingQueue) pop() pendingTrigger {
	p := (*q)[0]
	*q = (*q)[1:]
	return p
}
