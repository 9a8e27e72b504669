package reflection

import (
	"testing"

	"github.com/RyanBlaney/sonido-negativo/algorithms/chromatic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflect_AxisCG(t *testing.T) {
	engine := NewEngine(nil)

	want := map[string]string{
		"C": "G", "Db": "Gb", "D": "F", "Eb": "E",
		"E": "Eb", "F": "D", "Gb": "Db", "G": "C",
		"Ab": "B", "A": "Bb", "Bb": "A", "B": "Ab",
	}

	for input, expected := range want {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, engine.Reflect(input, "C"))
		})
	}
}

func TestReflect_OtherKeys(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		input, key, want string
	}{
		{"C", "G", "A"},
		{"C", "D", "B"},
		{"D", "D", "A"},
		{"F", "F", "C"},
		{"E", "A", "A"},
		{"Ab", "Eb", "F"},
	}

	for _, tt := range tests {
		t.Run(tt.input+"_in_"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Reflect(tt.input, tt.key))
		})
	}
}

func TestReflect_WorkedExample(t *testing.T) {
	// F lies 9 + 0 half-steps below its mirror image over C/G
	assert.Equal(t, "D", NewEngine(nil).Reflect("F", "C"))
}

func TestReflect_KeyCenterMapsToFifth(t *testing.T) {
	engine := NewEngine(nil)
	table := chromatic.Default()

	for _, key := range table.Symbols() {
		axis, err := engine.Axis(key)
		require.NoError(t, err)
		assert.Equal(t, axis.Fifth, engine.Reflect(key, key), "key %s", key)
		assert.Equal(t, key, engine.Reflect(axis.Fifth, key), "key %s", key)
	}
}

func TestReflect_InvolutionForEveryKey(t *testing.T) {
	engine := NewEngine(nil)
	symbols := chromatic.Default().Symbols()

	for _, key := range symbols {
		for _, note := range symbols {
			once := engine.Reflect(note, key)
			require.NotEmpty(t, once)
			assert.Equal(t, note, engine.Reflect(once, key), "%s over %s", note, key)
		}
	}
}

func TestReflect_EmptyAndUnknown(t *testing.T) {
	engine := NewEngine(nil)

	assert.Equal(t, "", engine.Reflect("", "C"))
	assert.Equal(t, "", engine.Reflect("H", "C"))
	assert.Equal(t, "", engine.Reflect("C", "H"))
	assert.Equal(t, "", engine.Reflect("C", ""))
}

func TestReflectStrict(t *testing.T) {
	engine := NewEngine(nil)

	got, err := engine.ReflectStrict("", "C")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = engine.ReflectStrict("C", "C")
	require.NoError(t, err)
	assert.Equal(t, "G", got)

	_, err = engine.ReflectStrict("H", "C")
	assert.ErrorIs(t, err, ErrUnknownNote)
	assert.ErrorIs(t, err, chromatic.ErrNotFound)
	assert.Contains(t, err.Error(), `"H"`)

	_, err = engine.ReflectStrict("C", "X")
	assert.ErrorIs(t, err, ErrUnknownNote)
	assert.Contains(t, err.Error(), `"X"`)
}

func TestReflectSequence(t *testing.T) {
	engine := NewEngine(nil)

	got := engine.ReflectSequence([]string{"C", "", "E", "G", "H"}, "C")
	assert.Equal(t, []string{"G", "Eb", "C", ""}, got)

	assert.Empty(t, engine.ReflectSequence(nil, "C"))
}

func TestReflectLine(t *testing.T) {
	engine := NewEngine(nil)

	assert.Equal(t, "G Eb C", engine.ReflectLine("C E G ", " ", "C"))
	assert.Equal(t, "G,Eb,C", engine.ReflectLine("C, E ,G", ",", "C"))
	assert.Equal(t, "", engine.ReflectLine("", " ", "C"))
	assert.Equal(t, "G Eb", engine.ReflectLine("  C \t E ", "", "C"))
}

func TestAxis(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		key, want string
	}{
		{"C", "C/G"},
		{"Db", "Db/Ab"},
		{"F", "F/C"},
		{"Gb", "Gb/Db"},
		{"B", "B/Gb"},
	}

	for _, tt := range tests {
		axis, err := engine.Axis(tt.key)
		require.NoError(t, err)
		assert.Equal(t, tt.want, axis.String())
	}

	_, err := engine.Axis("H")
	assert.ErrorIs(t, err, ErrUnknownNote)
}

func TestSplitNotes(t *testing.T) {
	assert.Equal(t, []string{"C", "Db", "E"}, SplitNotes(" C  Db E ", " "))
	assert.Equal(t, []string{"C", "Db"}, SplitNotes("C\tDb\n", ""))
	assert.Empty(t, SplitNotes("", " "))
}

func TestJoinNotes(t *testing.T) {
	assert.Equal(t, "C Db E", JoinNotes([]string{"C", "Db", "E"}, ""))
	assert.Equal(t, "C,Db", JoinNotes([]string{"C", "Db"}, ","))
	assert.Equal(t, "", JoinNotes(nil, ""))

	notes := []string{"Eb", "Ab"}
	assert.Equal(t, notes, SplitNotes(JoinNotes(notes, ""), ""))
}
