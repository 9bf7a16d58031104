package effect

import "github.com/yohamta/donburi"

// Queue is an append-only list of live effect requests.
type Queue struct {
	requests []*Request
}

func NewQueue() *Queue {
	return &Queue{}
}

// Post appends r and starts its timeline.
func (q *Queue) Post(r Request) *Request {
	req := r
	req.start()
	q.requests = append(q.requests, &req)
	return &req
}

// Update advances every timeline by dt and discards expired requests.
func (q *Queue) Update(dt float64) {
	kept := q.requests[:0]
	for _, r := range q.requests {
		r.update(dt)
		if !r.Expired() {
			kept = append(kept, r)
		}
	}
	clear(q.requests[len(kept):])
	q.requests = kept
}

// Requests returns the live requests in posting order. The slice is only
// valid until the next Update.
func (q *Queue) Requests() []*Request {
	return q.requests
}

func (q *Queue) Len() int {
	return len(q.requests)
}

// CountKind returns the number of live requests of kind k.
func (q *Queue) CountKind(k Kind) int {
	n := 0
	for _, r := range q.requests {
		if r.Kind == k {
			n++
		}
	}
	return n
}

// Detach stops targeting e, which has left the simulation. Every request
// aimed at e is pinned at (x, y) and plays out there.
func (q *Queue) Detach(e donburi.Entity, x, y float64) {
	for _, r := range q.requests {
		if r.HasTarget && r.Target == e {
			r.HasTarget = false
			r.X, r.Y = x, y
		}
	}
}

func (q *Queue) Clear() {
	clear(q.requests)
	q.requests = q.requests[:0]
}
