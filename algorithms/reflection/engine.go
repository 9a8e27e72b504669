package reflection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-negativo/algorithms/chromatic"
)

// ErrUnknownNote is returned by the strict variants for symbols outside the
// chromatic vocabulary. The returned errors also match chromatic.ErrNotFound.
var ErrUnknownNote = errors.New("unknown note")

// fifth is the distance from a key center to the other note of its axis
const fifth = 7

// AxisPair names the two notes an axis of inversion sits between
type AxisPair struct {
	KeyCenter string `json:"key_center"`
	Fifth     string `json:"fifth"`
}

// String renders the pair the way musicians write it, e.g. "C/G"
func (a AxisPair) String() string {
	return a.KeyCenter + "/" + a.Fifth
}

// Engine mirrors notes across the axis of a key center. It has no state of
// its own and can be shared freely.
type Engine struct {
	table *chromatic.Table
}

// NewEngine creates an engine over table, or over the default table if nil
func NewEngine(table *chromatic.Table) *Engine {
	if table == nil {
		table = chromatic.Default()
	}
	return &Engine{table: table}
}

// Table returns the chromatic table the engine reflects over
func (e *Engine) Table() *chromatic.Table {
	return e.table
}

// Reflect returns the mirror image of input across the axis of keyCenter.
// An empty or unknown input, or an unknown key center, yields "".
func (e *Engine) Reflect(input, keyCenter string) string {
	out, err := e.ReflectStrict(input, keyCenter)
	if err != nil {
		return ""
	}
	return out
}

// ReflectStrict is Reflect with malformed symbols reported as ErrUnknownNote.
// An empty input is still "nothing selected" and returns "" without error.
func (e *Engine) ReflectStrict(input, keyCenter string) (string, error) {
	if input == "" {
		return "", nil
	}

	note, err := e.table.Lookup(input)
	if err != nil {
		return "", unknownNote(input, err)
	}
	key, err := e.table.Lookup(keyCenter)
	if err != nil {
		return "", unknownNote(keyCenter, err)
	}
	idx, err := e.table.IndexOf(input)
	if err != nil {
		return "", unknownNote(input, err)
	}

	// Reflect over C/G, then move the result into the active key
	return e.table.NoteAt(idx + note.InversionDistance + key.KeyShift), nil
}

// ReflectSequence reflects each note independently. Empty tokens are
// dropped; unknown ones map to "".
func (e *Engine) ReflectSequence(notes []string, keyCenter string) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		if n == "" {
			continue
		}
		out = append(out, e.Reflect(n, keyCenter))
	}
	return out
}

// ReflectLine splits line on sep, reflects every note and joins the results
// with sep
func (e *Engine) ReflectLine(line, sep, keyCenter string) string {
	return JoinNotes(e.ReflectSequence(SplitNotes(line, sep), keyCenter), sep)
}

// Axis returns the pair of notes the axis of keyCenter runs between
func (e *Engine) Axis(keyCenter string) (AxisPair, error) {
	f, err := e.table.Transpose(keyCenter, fifth)
	if err != nil {
		return AxisPair{}, unknownNote(keyCenter, err)
	}
	return AxisPair{KeyCenter: keyCenter, Fifth: f}, nil
}

// SplitNotes breaks a separator-joined line into non-empty, trimmed tokens.
// An empty separator splits on whitespace.
func SplitNotes(line, sep string) []string {
	var raw []string
	if sep == "" {
		raw = strings.Fields(line)
	} else {
		raw = strings.Split(line, sep)
	}

	notes := make([]string, 0, len(raw))
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			notes = append(notes, r)
		}
	}
	return notes
}

// JoinNotes is the inverse of SplitNotes. An empty separator joins with a
// single space.
func JoinNotes(notes []string, sep string) string {
	if sep == "" {
		sep = " "
	}
	return strings.Join(notes, sep)
}

func unknownNote(symbol string, err error) error {
	return fmt.Errorf("%w %q: %w", ErrUnknownNote, symbol, err)
}
