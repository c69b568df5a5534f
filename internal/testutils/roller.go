package testutils

import (
	"fmt"
	"sync"
)

// ScriptedRoller is a dice.Roller that replays queued values. Once the
// queue is empty it keeps returning the fallback value, clamped to the
// requested die size.
type ScriptedRoller struct {
	mu       sync.Mutex
	queue    []int
	fallback int
	sizes    []int
}

// NewScriptedRoller queues rolls. The fallback for an exhausted queue is 1.
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{queue: append([]int(nil), rolls...), fallback: 1}
}

// WithFallback sets the value returned after the queue runs out
func (r *ScriptedRoller) WithFallback(v int) *ScriptedRoller {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = v
	return r
}

// Push appends rolls to the queue
func (r *ScriptedRoller) Push(rolls ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, rolls...)
}

// Roll returns the next queued value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if size < 1 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	r.sizes = append(r.sizes, size)

	v := r.fallback
	if len(r.queue) > 0 {
		v = r.queue[0]
		r.queue = r.queue[1:]
	}
	if v > size {
		v = size
	}
	if v < 1 {
		v = 1
	}
	return v, nil
}

// RollN returns count queued values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Sizes returns the die sizes requested so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}

// Remaining returns how many queued rolls are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}
