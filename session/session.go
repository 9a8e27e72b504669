// Package session holds the state a front end needs to drive the reflection
// engine: the notes entered so far, their reflections, and the key center
// selector with its axis rotation. Nothing in here renders anything.
package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/RyanBlaney/sonido-negativo/algorithms/axis"
	"github.com/RyanBlaney/sonido-negativo/algorithms/chromatic"
	"github.com/RyanBlaney/sonido-negativo/algorithms/reflection"
	"github.com/RyanBlaney/sonido-negativo/algorithms/selector"
	"github.com/RyanBlaney/sonido-negativo/logging"
)

// Snapshot is a copy of everything a front end displays
type Snapshot struct {
	KeyCenter string              `json:"key_center"`
	Index     int                 `json:"index"`
	Axis      reflection.AxisPair `json:"axis"`
	Angle     float64             `json:"angle"`
	Input     []string            `json:"input"`
	Output    []string            `json:"output"`
}

// Listener is called after any change to the session
type Listener func(Snapshot)

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for state transitions
func WithLogger(logger logging.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session is one user's view of the inverter. Sessions are independent: the
// engine may be shared, the selector never is.
type Session struct {
	engine    *reflection.Engine
	keys      *selector.Cyclic[string]
	input     []string
	output    []string
	angle     float64
	logger    logging.Logger
	listeners []Listener
}

// New creates a session with C as key center. A nil engine uses the default
// chromatic table.
func New(engine *reflection.Engine, opts ...Option) (*Session, error) {
	if engine == nil {
		engine = reflection.NewEngine(nil)
	}

	keys, err := selector.New(engine.Table().Symbols())
	if err != nil {
		return nil, fmt.Errorf("failed to create key center selector: %w", err)
	}

	s := &Session{
		engine: engine,
		keys:   keys,
		logger: &logging.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.angle = axis.Angle(keys.Index())
	keys.OnChange(s.keyCenterChanged)

	return s, nil
}

func (s *Session) keyCenterChanged(index int, key string) {
	s.output = s.engine.ReflectSequence(s.input, key)
	s.angle = axis.Angle(index)

	s.logger.Debug("key center changed", logging.Fields{
		"key_center": key,
		"index":      index,
		"angle":      s.angle,
	})
	s.notify()
}

// Press enters one note and returns its reflection in the current key
func (s *Session) Press(note string) (string, error) {
	if !s.engine.Table().Contains(note) {
		s.logger.Warn("ignoring unknown note", logging.Fields{"note": note})
		return "", fmt.Errorf("press %q: %w", note, chromatic.ErrNotFound)
	}

	out := s.engine.Reflect(note, s.keys.Value())
	s.input = append(s.input, note)
	s.output = append(s.output, out)

	s.notify()
	return out, nil
}

// PressLine enters every note of a separator-joined line. Unknown notes are
// skipped and reported together.
func (s *Session) PressLine(line, sep string) error {
	var errs []error
	for _, note := range reflection.SplitNotes(line, sep) {
		if _, err := s.Press(note); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetKeyCenter commits a new key center. Every entered note is reflected
// again when the key actually changes.
func (s *Session) SetKeyCenter(key string) error {
	if err := s.keys.Select(key); err != nil {
		return fmt.Errorf("set key center: %w", err)
	}
	return nil
}

// Up commits the selector's next value, the way a spinner's up arrow does
func (s *Session) Up() string {
	s.commit(s.keys.NextValue())
	return s.keys.Value()
}

// Down commits the selector's previous value. Starting from C it walks
// Db, D, Eb and so on.
func (s *Session) Down() string {
	s.commit(s.keys.PreviousValue())
	return s.keys.Value()
}

// Step moves the key center n half-steps up the chromatic scale, or down for
// negative n
func (s *Session) Step(n int) string {
	for ; n > 0; n-- {
		s.Down()
	}
	for ; n < 0; n++ {
		s.Up()
	}
	return s.keys.Value()
}

// Complete selects the first key center at or after the current one whose
// name starts with prefix
func (s *Session) Complete(prefix string) (string, bool) {
	match, ok := s.keys.FindNextMatch(prefix)
	if !ok {
		return "", false
	}
	s.commit(match)
	return match, true
}

func (s *Session) commit(key string) {
	// values come from the selector itself so Select cannot miss
	if err := s.keys.Select(key); err != nil {
		s.logger.Error(err, "failed to commit key center")
	}
}

// Clear forgets every entered note
func (s *Session) Clear() {
	s.input = nil
	s.output = nil
	s.notify()
}

// KeyCenter returns the current key center
func (s *Session) KeyCenter() string {
	return s.keys.Value()
}

// Index returns the selector position used for the axis rotation
func (s *Session) Index() int {
	return s.keys.Index()
}

// Angle returns the axis overlay rotation in degrees
func (s *Session) Angle() float64 {
	return s.angle
}

// Axis returns the pair of notes the current axis runs between
func (s *Session) Axis() reflection.AxisPair {
	pair, err := s.engine.Axis(s.keys.Value())
	if err != nil {
		// the selector only holds table symbols
		s.logger.Error(err, "failed to resolve axis")
	}
	return pair
}

// Input returns the entered notes
func (s *Session) Input() []string {
	return slices.Clone(s.input)
}

// Output returns the reflections of the entered notes
func (s *Session) Output() []string {
	return slices.Clone(s.output)
}

// Snapshot copies the current state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		KeyCenter: s.keys.Value(),
		Index:     s.keys.Index(),
		Axis:      s.Axis(),
		Angle:     s.angle,
		Input:     s.Input(),
		Output:    s.Output(),
	}
}

// OnChange registers a listener for any state change
func (s *Session) OnChange(listener Listener) {
	if listener != nil {
		s.listeners = append(s.listeners, listener)
	}
}

func (s *Session) notify() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, l := range s.listeners {
		l(snap)
	}
}
