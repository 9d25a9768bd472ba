package lock

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHash(t *testing.T, pass string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func typeString(p *Prompt, s string) {
	for _, r := range s {
		p.Key(tcell.KeyRune, r)
	}
}

func TestPromptUnlock(t *testing.T) {
	p := NewPrompt(testHash(t, "tick"+ArrowUpMarker))
	defer p.Close()

	require.False(t, p.IsOpen())
	p.Open()
	require.True(t, p.IsOpen())

	typeString(p, "tick")
	assert.Equal(t, Pending, p.Key(tcell.KeyUp, 0))
	assert.Equal(t, 5, p.Typed())

	assert.Equal(t, Unlocked, p.Key(tcell.KeyEnter, 0))
	assert.False(t, p.IsOpen())
	assert.Zero(t, p.Typed())
}

func TestPromptReject(t *testing.T) {
	p := NewPrompt(testHash(t, "tock"))
	defer p.Close()

	p.Open()
	typeString(p, "tick")
	assert.Equal(t, Rejected, p.Key(tcell.KeyEnter, 0))
	assert.False(t, p.IsOpen())

	// The buffer starts clean on the next attempt.
	p.Open()
	typeString(p, "tockx")
	p.Key(tcell.KeyBackspace2, 0)
	assert.Equal(t, Unlocked, p.Key(tcell.KeyEnter, 0))
}

func TestPromptCancel(t *testing.T) {
	p := NewPrompt(testHash(t, "x"))
	defer p.Close()

	p.Open()
	typeString(p, "abc")
	assert.Equal(t, Cancelled, p.Key(tcell.KeyEsc, 0))
	assert.False(t, p.IsOpen())
	assert.Zero(t, p.Typed())
}

func TestHash(t *testing.T) {
	h, err := Hash([]byte("pass"))
	require.NoError(t, err)
	require.NoError(t, CheckHash(h))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("pass")))

	assert.Error(t, CheckHash("not-a-hash"))
}
