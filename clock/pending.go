package clock

import (
	"slices"
	"sort"
	"time"
)

// pendingQueue keeps virtual timers ordered by deadline, then by scheduling order.
type pendingQueue struct {
	timers []*virtualTimer
}

func firesBefore(a, b *virtualTimer) bool {
	if a.deadline.Equal(b.deadline) {
		return a.seq < b.seq
	}
	return a.deadline.Before(b.deadline)
}

func (q *pendingQueue) insert(t *virtualTimer) {
	idx := sort.Search(len(q.timers), func(i int) bool {
		return firesBefore(t, q.timers[i])
	})

	q.timers = append(q.timers, t)
	copy(q.timers[idx+1:], q.timers[idx:])
	q.timers[idx] = t
}

// popDue removes and returns the earliest timer whose deadline is not after target.
func (q *pendingQueue) popDue(target time.Time) (*virtualTimer, bool) {
	if len(q.timers) == 0 || q.timers[0].deadline.After(target) {
		return nil, false
	}
	t := q.timers[0]
	q.timers[0] = nil
	q.timers = q.timers[1:]
	return t, true
}

func (q *pendingQueue) remove(t *virtualTimer) {
	if idx := slices.Index(q.timers, t); idx >= 0 {
		q.timers = slices.Delete(q.timers, idx, idx+1)
	}
}

func (q *pendingQueue) len() int {
	return len(q.timers)
}
