package services

import (
	"errors"
	"sync"
	"time"
)

var ErrBadCallTransition = errors.New("call transition not allowed from current state")

type CallState string

const (
	CallIdle      CallState = "idle"
	CallPrompting CallState = "prompting"
	CallDialing   CallState = "dialing"
	CallOngoing   CallState = "ongoing"
	CallEnded     CallState = "ended"
)

// CallSimulator is the scripted state machine behind the "direct call" UI
// affordance. Dialing runs a fixed timeline: ongoing after dialToOngoing,
// ended at dialToEnded, back to idle at dialToIdle. There is no telephony
// behind it.
type CallSimulator struct {
	mu    sync.Mutex
	state CallState

	// generation invalidates timers scheduled for a superseded call.
	generation int
	timers     []*time.Timer

	dialToOngoing time.Duration
	dialToEnded   time.Duration
	dialToIdle    time.Duration
}

func NewCallSimulator() *CallSimulator {
	return &CallSimulator{
		state:         CallIdle,
		dialToOngoing: 2 * time.Second,
		dialToEnded:   6 * time.Second,
		dialToIdle:    8 * time.Second,
	}
}

func (c *CallSimulator) State() CallState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Prompt opens the number-entry step. Only valid from idle.
func (c *CallSimulator) Prompt() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != CallIdle {
		return ErrBadCallTransition
	}
	c.state = CallPrompting
	return nil
}

// Dial starts the scripted call timeline. Only valid from prompting.
func (c *CallSimulator) Dial() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != CallPrompting {
		return ErrBadCallTransition
	}
	c.state = CallDialing

	gen := c.generation
	c.timers = append(c.timers,
		time.AfterFunc(c.dialToOngoing, func() { c.advance(gen, CallOngoing) }),
		time.AfterFunc(c.dialToEnded, func() { c.advance(gen, CallEnded) }),
		time.AfterFunc(c.dialToIdle, func() { c.advance(gen, CallIdle) }),
	)
	return nil
}

// Hangup cancels any scheduled transitions and returns to idle from any
// state.
func (c *CallSimulator) Hangup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// advance applies a scheduled transition unless the call it belonged to has
// been superseded.
func (c *CallSimulator) advance(gen int, next CallState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.state = next
	if next == CallIdle {
		c.reset()
	}
}

// reset must be called with the lock held.
func (c *CallSimulator) reset() {
	for _, t := range c.timers {
		t.Stop()
	}
	c.timers = nil
	c.generation++
	c.state = CallIdle
}
