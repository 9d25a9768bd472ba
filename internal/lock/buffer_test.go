package lock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsArrowMarkerSuffix(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantMatch  bool
		wantRemove int
	}{
		{name: "empty", data: nil, wantMatch: false, wantRemove: 1},
		{name: "plain text", data: []byte("abc"), wantMatch: false, wantRemove: 1},
		{name: "up", data: []byte("x" + ArrowUpMarker), wantMatch: true, wantRemove: 2},
		{name: "down", data: []byte(ArrowDownMarker), wantMatch: true, wantRemove: 2},
		{name: "left", data: []byte("ab" + ArrowLeftMarker), wantMatch: true, wantRemove: 2},
		{name: "right", data: []byte("ab" + ArrowRightMarker), wantMatch: true, wantRemove: 2},
		{name: "marker then text", data: []byte(ArrowUpMarker + "x"), wantMatch: false, wantRemove: 1},
		{name: "nul with unknown direction", data: []byte{'a', 0x00, 0x05}, wantMatch: false, wantRemove: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMatch, gotRemove := IsArrowMarkerSuffix(tt.data)
			assert.Equal(t, tt.wantMatch, gotMatch, "match")
			assert.Equal(t, tt.wantRemove, gotRemove, "remove")
		})
	}
}

func TestSecureBufferBackspace(t *testing.T) {
	sb := NewSecureBuffer()
	defer sb.Destroy()

	assert.False(t, sb.Backspace(), "empty buffer")

	sb.AppendRune('k')
	sb.AppendString(ArrowLeftMarker)
	sb.AppendRune('é')
	require.Equal(t, 5, sb.Len())
	require.Equal(t, 3, sb.VisualLen())

	require.True(t, sb.Backspace())
	assert.Equal(t, 3, sb.Len(), "two-byte rune removed whole")

	require.True(t, sb.Backspace())
	assert.Equal(t, "k", string(sb.Bytes()), "marker removed whole")

	require.True(t, sb.Backspace())
	assert.Zero(t, sb.Len())
	assert.False(t, sb.Backspace())
}

func TestSecureBufferVisualLen(t *testing.T) {
	sb := NewSecureBuffer()
	defer sb.Destroy()

	sb.AppendString(ArrowUpMarker)
	sb.AppendString(ArrowUpMarker)
	sb.AppendString(ArrowDownMarker)
	sb.AppendRune('b')
	sb.AppendRune('世')
	assert.Equal(t, 5, sb.VisualLen())
}

func TestSecureBufferCapacity(t *testing.T) {
	sb := NewSecureBuffer()
	defer sb.Destroy()

	require.True(t, sb.AppendString(strings.Repeat("z", MaxPassphrase-1)))
	assert.False(t, sb.AppendString(ArrowUpMarker), "marker does not fit")
	assert.True(t, sb.AppendRune('z'))
	assert.False(t, sb.AppendRune('z'))
	assert.Equal(t, MaxPassphrase, sb.Len())
}

func TestSecureBufferReset(t *testing.T) {
	sb := NewSecureBuffer()
	defer sb.Destroy()

	sb.AppendString("secret")
	sb.Reset()
	assert.Zero(t, sb.Len())

	sb.AppendString("ok")
	assert.Equal(t, "ok", string(sb.Bytes()))
}
