package chromatic

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/sonido-negativo/algorithms/common"
)

// ScaleSize is the number of pitch classes in the chromatic scale
const ScaleSize = 12

// ErrNotFound is returned when a symbol is not part of the note vocabulary
var ErrNotFound = errors.New("note not found")

// NoteEntry is one pitch class of the chromatic scale together with the two
// half-step offsets used for reflection
type NoteEntry struct {
	Symbol            string `json:"symbol" yaml:"symbol"`
	InversionDistance int    `json:"inversion_distance" yaml:"inversion_distance"` // Half-steps up to the mirror image over the C/G axis
	KeyShift          int    `json:"key_shift" yaml:"key_shift"`                   // Half-steps added when this note is the key center
}

// The C/G axis lies between Eb and E. Inverting F over it lands (9 + 0)
// half-steps above F, which is D. The second half of the table repeats the
// first: offsets are shared by notes a tritone apart.
var noteEntries = [ScaleSize]NoteEntry{
	{"C", 7, 0}, {"Db", 5, 2},
	{"D", 3, 4}, {"Eb", 1, 6},
	{"E", 11, 8}, {"F", 9, 10},
	{"Gb", 7, 0}, {"G", 5, 2},
	{"Ab", 3, 4}, {"A", 1, 6},
	{"Bb", 11, 8}, {"B", 9, 10},
}

// Table is the immutable chromatic scale. A single instance is safe to share
// between any number of readers.
type Table struct {
	entries map[string]NoteEntry
	indices map[string]int
	symbols []string
}

var defaultTable = NewTable()

// NewTable builds the 12-note table in chromatic order starting from C
func NewTable() *Table {
	t := &Table{
		entries: make(map[string]NoteEntry, ScaleSize),
		indices: make(map[string]int, ScaleSize),
		symbols: make([]string, 0, ScaleSize),
	}

	for i, entry := range noteEntries {
		t.entries[entry.Symbol] = entry
		t.indices[entry.Symbol] = i
		t.symbols = append(t.symbols, entry.Symbol)
	}

	return t
}

// Default returns the shared process-wide table
func Default() *Table {
	return defaultTable
}

// Lookup returns the entry for symbol
func (t *Table) Lookup(symbol string) (NoteEntry, error) {
	entry, ok := t.entries[symbol]
	if !ok {
		return NoteEntry{}, fmt.Errorf("lookup %q: %w", symbol, ErrNotFound)
	}
	return entry, nil
}

// IndexOf returns the chromatic position of symbol, C being 0
func (t *Table) IndexOf(symbol string) (int, error) {
	idx, ok := t.indices[symbol]
	if !ok {
		return -1, fmt.Errorf("index of %q: %w", symbol, ErrNotFound)
	}
	return idx, nil
}

// NoteAt returns the symbol at index, wrapping any integer onto the cycle
func (t *Table) NoteAt(index int) string {
	return t.symbols[common.Mod(index, len(t.symbols))]
}

// Transpose returns the note the given number of half-steps away from symbol
func (t *Table) Transpose(symbol string, halfSteps int) (string, error) {
	idx, err := t.IndexOf(symbol)
	if err != nil {
		return "", err
	}
	return t.NoteAt(idx + halfSteps), nil
}

// Contains reports whether symbol is part of the vocabulary
func (t *Table) Contains(symbol string) bool {
	_, ok := t.entries[symbol]
	return ok
}

// Symbols returns a copy of the symbols in chromatic order
func (t *Table) Symbols() []string {
	out := make([]string, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// Entries returns the entries in chromatic order
func (t *Table) Entries() []NoteEntry {
	out := make([]NoteEntry, len(t.symbols))
	for i, s := range t.symbols {
		out[i] = t.entries[s]
	}
	return out
}

// Len returns the number of notes in the table
func (t *Table) Len() int {
	return len(t.symbols)
}
