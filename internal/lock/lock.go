package lock

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of passphrase at the default cost.
func Hash(passphrase []byte) (string, error) {
	h, err := bcrypt.GenerateFromPassword(passphrase, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing passphrase: %w", err)
	}
	return string(h), nil
}

// CheckHash reports whether h looks like a bcrypt hash.
func CheckHash(h string) error {
	if _, err := bcrypt.Cost([]byte(h)); err != nil {
		return fmt.Errorf("lock hash: %w", err)
	}
	return nil
}

// ---- Prompt

// Result is the outcome of one key fed to a Prompt.
type Result int

const (
	Pending Result = iota
	Unlocked
	Rejected
	Cancelled
)

// Prompt collects a passphrase one key at a time.
type Prompt struct {
	hash []byte
	buf  *SecureBuffer
	open bool
}

// NewPrompt returns a closed prompt for hash.
func NewPrompt(hash string) *Prompt {
	return &Prompt{hash: []byte(hash), buf: NewSecureBuffer()}
}

// Open shows the prompt with an empty buffer.
func (p *Prompt) Open() {
	p.buf.Reset()
	p.open = true
}

// IsOpen reports whether keys are being collected.
func (p *Prompt) IsOpen() bool { return p.open }

// Typed is the number of keys entered so far.
func (p *Prompt) Typed() int { return p.buf.VisualLen() }

// Key feeds one key press. Enter verifies, Esc cancels, Backspace
// removes a key and arrows are recorded as markers.
func (p *Prompt) Key(k tcell.Key, r rune) Result {
	switch k {
	case tcell.KeyEnter:
		err := bcrypt.CompareHashAndPassword(p.hash, p.buf.Bytes())
		p.buf.Reset()
		p.open = false
		if err != nil {
			return Rejected
		}
		return Unlocked
	case tcell.KeyEsc:
		p.buf.Reset()
		p.open = false
		return Cancelled
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		p.buf.Backspace()
	case tcell.KeyUp:
		p.buf.AppendString(ArrowUpMarker)
	case tcell.KeyDown:
		p.buf.AppendString(ArrowDownMarker)
	case tcell.KeyLeft:
		p.buf.AppendString(ArrowLeftMarker)
	case tcell.KeyRight:
		p.buf.AppendString(ArrowRightMarker)
	case tcell.KeyRune:
		if r != 0 {
			p.buf.AppendRune(r)
		}
	}
	return Pending
}

// Close releases the guarded buffer.
func (p *Prompt) Close() {
	p.buf.Destroy()
}
