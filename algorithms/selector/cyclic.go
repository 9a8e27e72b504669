package selector

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrInvalidArgument is returned when a selector is built over no values
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when selecting a value the selector does not hold
	ErrNotFound = errors.New("value not found")
)

// ChangeListener is notified after the cursor has moved to a new position
type ChangeListener[T comparable] func(index int, value T)

// Cyclic is a circular cursor over a fixed list of values.
//
// Values are stored in reverse of the order they were given and the cursor
// starts on the last stored slot, which is the first value passed in. Moving
// "previous" therefore walks the caller's order forwards. Index reports the
// position in the reversed storage.
//
// NextValue and PreviousValue only peek; Select is the single way to move the
// cursor. The zero value holds nothing: its queries return the zero T and
// Select always fails. Use New to get a usable selector. A Cyclic is not safe
// for concurrent use; each owner keeps its own.
type Cyclic[T comparable] struct {
	values    []T
	index     int
	listeners []ChangeListener[T]
}

// New creates a selector over values, positioned on values[0]
func New[T comparable](values []T) (*Cyclic[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("cyclic selector expects a non-empty sequence: %w", ErrInvalidArgument)
	}

	stored := slices.Clone(values)
	slices.Reverse(stored)

	return &Cyclic[T]{
		values: stored,
		index:  len(stored) - 1,
	}, nil
}

// Value returns the value under the cursor
func (c *Cyclic[T]) Value() T {
	if len(c.values) == 0 {
		var zero T
		return zero
	}
	return c.values[c.index]
}

// Index returns the cursor position within the reversed storage
func (c *Cyclic[T]) Index() int {
	return c.index
}

// Len returns the number of values
func (c *Cyclic[T]) Len() int {
	return len(c.values)
}

// Values returns a copy of the values in storage order
func (c *Cyclic[T]) Values() []T {
	return slices.Clone(c.values)
}

// Select moves the cursor onto value. Listeners run only when the position
// actually changes.
func (c *Cyclic[T]) Select(value T) error {
	idx := slices.Index(c.values, value)
	if idx == -1 {
		return fmt.Errorf("select %v: %w", value, ErrNotFound)
	}
	if idx == c.index {
		return nil
	}

	c.index = idx
	for _, listener := range c.listeners {
		listener(idx, value)
	}
	return nil
}

// NextValue returns the value after the cursor, wrapping from the last slot
// to the first
func (c *Cyclic[T]) NextValue() T {
	if len(c.values) == 0 {
		var zero T
		return zero
	}
	if c.index >= len(c.values)-1 {
		return c.values[0]
	}
	return c.values[c.index+1]
}

// PreviousValue returns the value before the cursor, wrapping from the first
// slot to the last
func (c *Cyclic[T]) PreviousValue() T {
	if len(c.values) == 0 {
		var zero T
		return zero
	}
	if c.index <= 0 {
		return c.values[len(c.values)-1]
	}
	return c.values[c.index-1]
}

// FindNextMatch scans forward from the cursor, inclusive, for the first value
// whose string form starts with prefix
func (c *Cyclic[T]) FindNextMatch(prefix string) (T, bool) {
	var zero T

	n := len(c.values)
	if n == 0 {
		return zero, false
	}

	counter := c.index
	for {
		value := c.values[counter]
		if strings.HasPrefix(fmt.Sprint(value), prefix) {
			return value, true
		}
		counter = (counter + 1) % n
		if counter == c.index {
			return zero, false
		}
	}
}

// OnChange registers a listener for cursor moves
func (c *Cyclic[T]) OnChange(listener ChangeListener[T]) {
	if listener != nil {
		c.listeners = append(c.listeners, listener)
	}
}
