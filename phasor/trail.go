package phasor

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/queues/circularbuffer"
	"github.com/npillmayer/epicycles"
)

// DefaultTrailCapacity is the number of tip positions a trail remembers by
// default.
const DefaultTrailCapacity = 100

// ErrTrailCapacity indicates a non-positive trail capacity.
var ErrTrailCapacity = errors.New("trail capacity must be positive")

// TrailPoint is a past position of the chain's tip.
type TrailPoint struct {
	X, Y float64
}

// Trail is a bounded history of tip positions. Points are stored relative to
// the chain's origin and shifted when read. Once full, every new point
// evicts the oldest one.
type Trail struct {
	points *circularbuffer.Queue
	cap    int
}

// NewTrail creates an empty trail holding at most capacity points.
func NewTrail(capacity int) (*Trail, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrTrailCapacity, capacity)
	}
	return &Trail{
		points: circularbuffer.New(capacity),
		cap:    capacity,
	}, nil
}

// Push appends a tip position, evicting the oldest one if the trail is full.
func (t *Trail) Push(p epicycles.Pair) {
	if t.points.Full() {
		t.points.Dequeue()
	}
	t.points.Enqueue(p)
}

// Len returns the number of points currently held.
func (t *Trail) Len() int {
	return t.points.Size()
}

// Cap returns the maximum number of points.
func (t *Trail) Cap() int {
	return t.cap
}

// Clear removes all points.
func (t *Trail) Clear() {
	t.points.Clear()
}

// Points returns the trail shifted by origin, oldest point first.
func (t *Trail) Points(origin epicycles.Pair) []TrailPoint {
	values := t.points.Values()
	pts := make([]TrailPoint, len(values))
	for i, v := range values {
		p := v.(epicycles.Pair) + origin
		pts[i] = TrailPoint{X: p.X(), Y: p.Y()}
	}
	return pts
}
