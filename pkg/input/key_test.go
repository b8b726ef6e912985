package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	cases := map[string]Key{
		"w":          KeyW,
		"W":          KeyW,
		"space":      KeySpace,
		"Left Shift": KeyLeftShift,
		"left-shift": KeyLeftShift,
		"LEFT_SHIFT": KeyLeftShift,
		"7":          Key7,
		" z ":        KeyZ,
	}
	for name, want := range cases {
		got, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestParseKeyUnknown(t *testing.T) {
	k, err := ParseKey("hyper")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, KeyUnknown, k)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "a", KeyA.String())
	assert.Equal(t, "left_shift", KeyLeftShift.String())
	assert.Equal(t, "key(999)", Key(999).String())

	for _, k := range []Key{KeyW, KeySpace, KeyEscape, Key0} {
		parsed, err := ParseKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}

func TestPressed(t *testing.T) {
	p := NewPressed(KeyW, KeyA)
	assert.True(t, p.KeyPressed(KeyW))
	assert.True(t, p.KeyPressed(KeyA))
	assert.False(t, p.KeyPressed(KeyS))

	p.Release(KeyW)
	assert.False(t, p.KeyPressed(KeyW))

	p.Press(KeyS)
	assert.True(t, p.KeyPressed(KeyS))

	var zero Pressed
	assert.False(t, zero.KeyPressed(KeyW))
	zero.Press(KeyW)
	assert.True(t, zero.KeyPressed(KeyW))
}
