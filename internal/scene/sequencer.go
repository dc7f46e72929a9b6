package scene

import "math"

// NoZ is returned for out of range lookups. Real z values start at 1.
const NoZ = 0

// Sequencer hands out creation-order stamps. Values are strictly increasing
// and never reused for the lifetime of a Scene.
type Sequencer interface {
	Next() int
}

// Counter is the default Sequencer.
type Counter struct {
	last int
}

// NewCounter returns a Counter whose first value is start+1.
func NewCounter(start int) *Counter { return &Counter{last: start} }

func (c *Counter) Next() int {
	if c.last == math.MaxInt {
		// Wrapping would hand out a z that is already on screen.
		panic("scene: z sequence exhausted")
	}
	c.last++
	return c.last
}

// Last reports the most recently issued value, or the start value.
func (c *Counter) Last() int { return c.last }
