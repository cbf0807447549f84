package event

// Queue buffers events until the presentation layer drains them, once per frame.
type Queue struct {
	pending []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) OnEvent(e Event) {
	q.pending = append(q.pending, e)
}

// Drain returns the buffered events in dispatch order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.pending
	q.pending = nil
	return out
}

func (q *Queue) Len() int {
	return len(q.pending)
}
