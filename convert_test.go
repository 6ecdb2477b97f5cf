package ufobridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/ufobridge/ufo"
)

// ============================================================
// Scalar Converter Tests
// ============================================================

func TestScalar_OptionalAbsencePresence(t *testing.T) {
	s := "note"
	f := 500.0
	n := int64(2)
	c := ufo.Color{R: 1, A: 1}

	assert.Nil(t, optString(nil))
	assert.Equal(t, "note", optString(&s))

	assert.Nil(t, optFloat(nil))
	assert.Equal(t, 500.0, optFloat(&f))

	assert.Nil(t, optInt(nil))
	assert.Equal(t, int64(2), optInt(&n))

	assert.Nil(t, optColor(nil))
	assert.Equal(t, "1,0,0,1", optColor(&c))
}

func TestScalar_Lists(t *testing.T) {
	assert.Equal(t, []any{"a", "b"}, stringList([]string{"a", "b"}))
	assert.Equal(t, []any{}, stringList(nil))

	// Codepoints become integer code points, order preserved.
	assert.Equal(t, []any{int64(0x41), int64(0x301)}, codepointList([]rune{0x41, 0x301}))
	assert.Equal(t, []any{}, codepointList(nil))
}

// ============================================================
// Arbitrary-Value Converter Tests
// ============================================================

func TestLibValue_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		value    ufo.Value
		expected any
	}{
		{"string", ufo.String("x"), "x"},
		{"int", ufo.Int(12), int64(12)},
		{"float", ufo.Float(1.5), 1.5},
		{"bool", ufo.Bool(true), true},
		{"invalid zero value", ufo.Value{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, libValue(tt.value))
		})
	}
}

func TestLibValue_Data(t *testing.T) {
	src := []byte{0xde, 0xad}
	out := libValue(ufo.Data(src))
	b, ok := out.([]byte)
	require.True(t, ok)
	assert.Equal(t, src, b)

	// Copy semantics: mutating the result must not reach the source.
	b[0] = 0x00
	assert.Equal(t, byte(0xde), src[0])
}

func TestLibValue_ArrayOrder(t *testing.T) {
	out := libValue(ufo.Array(ufo.Int(3), ufo.Int(1), ufo.Int(2)))
	assert.Equal(t, []any{int64(3), int64(1), int64(2)}, out)
}

func TestLibDict_SortedKeysAtEveryDepth(t *testing.T) {
	inner := ufo.NewDict(
		ufo.DictEntry{Key: "zz", Value: ufo.Int(1)},
		ufo.DictEntry{Key: "aa", Value: ufo.Int(2)},
	)
	outer := ufo.NewDict(
		ufo.DictEntry{Key: "com.example.tool", Value: ufo.DictValue(inner)},
		ufo.DictEntry{Key: "com.another", Value: ufo.Array(ufo.String("v"))},
	)

	d := libDict(outer)
	require.Equal(t, []string{"com.another", "com.example.tool"}, d.Keys())

	nested, ok := d.Get("com.example.tool")
	require.True(t, ok)
	nd, ok := nested.(*Dict)
	require.True(t, ok)
	assert.Equal(t, []string{"aa", "zz"}, nd.Keys())
}

func TestLibDict_EmptyIsPresent(t *testing.T) {
	d := libDict(&ufo.Dict{})
	require.NotNil(t, d)
	assert.Equal(t, 0, d.Len())

	d = libDict(nil)
	require.NotNil(t, d)
	assert.Equal(t, 0, d.Len())
}

// ============================================================
// Dynamic Vocabulary Tests
// ============================================================

func TestDynamicDict_InsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("z", 1)
	d.Set("a", 2)
	d.Set("m", 3)

	// Insertion order, not sorted: ordering is the producer's business.
	assert.Equal(t, []string{"z", "a", "m"}, d.Keys())

	d.Set("a", 4)
	assert.Equal(t, 3, d.Len())
	v, ok := d.Get("a")
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestPairMap_Basics(t *testing.T) {
	m := NewPairMap()
	m.Set(Pair{Left: "A", Right: "B"}, -20)
	m.Set(Pair{Left: "A", Right: "V"}, -30)

	assert.Equal(t, 2, m.Len())
	v, ok := m.Get(Pair{Left: "A", Right: "B"})
	require.True(t, ok)
	assert.Equal(t, -20.0, v)

	_, ok = m.Get(Pair{Left: "B", Right: "A"})
	assert.False(t, ok)

	m.Set(Pair{Left: "A", Right: "B"}, -25)
	assert.Equal(t, 2, m.Len())
	v, _ = m.Get(Pair{Left: "A", Right: "B"})
	assert.Equal(t, -25.0, v)
}
