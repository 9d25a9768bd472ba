// Package lock gates quitting behind a passphrase. Typed keys are kept
// in guarded memory and checked against a bcrypt hash.
package lock

import (
	"unicode/utf8"

	"github.com/awnumar/memguard"
)

// ---- Arrow Markers

// Arrow keys may be part of a passphrase. Each is stored as a NUL byte
// followed by a direction byte, which a passphrase typed as text cannot
// contain.
const (
	ArrowUpMarker    = "\x00\x01"
	ArrowDownMarker  = "\x00\x02"
	ArrowLeftMarker  = "\x00\x03"
	ArrowRightMarker = "\x00\x04"
)

// MaxPassphrase is the capacity of a SecureBuffer in bytes.
const MaxPassphrase = 256

// IsArrowMarkerSuffix reports whether data ends in an arrow marker and
// how many bytes the last visual key occupies. An empty slice reports 1
// so callers can treat the result as a removal length unconditionally.
func IsArrowMarkerSuffix(data []byte) (bool, int) {
	n := len(data)
	if n >= 2 && data[n-2] == 0x00 && data[n-1] >= 0x01 && data[n-1] <= 0x04 {
		return true, 2
	}
	return false, 1
}

// SecureBuffer holds typed passphrase bytes in a memguard LockedBuffer.
type SecureBuffer struct {
	buf *memguard.LockedBuffer
	n   int
}

// NewSecureBuffer allocates a guarded buffer of MaxPassphrase bytes.
func NewSecureBuffer() *SecureBuffer {
	return &SecureBuffer{buf: memguard.NewBuffer(MaxPassphrase)}
}

// AppendRune adds r as UTF-8. It reports false when the buffer is full.
func (sb *SecureBuffer) AppendRune(r rune) bool {
	var tmp [utf8.UTFMax]byte
	w := utf8.EncodeRune(tmp[:], r)
	return sb.append(tmp[:w])
}

// AppendString adds s verbatim. It is how arrow markers get in.
func (sb *SecureBuffer) AppendString(s string) bool {
	return sb.append([]byte(s))
}

func (sb *SecureBuffer) append(p []byte) bool {
	if sb.n+len(p) > MaxPassphrase {
		return false
	}
	copy(sb.buf.Bytes()[sb.n:], p)
	sb.n += len(p)
	return true
}

// Backspace removes the last visual key: an arrow marker or one rune.
func (sb *SecureBuffer) Backspace() bool {
	if sb.n == 0 {
		return false
	}
	data := sb.Bytes()
	remove := 1
	if ok, mlen := IsArrowMarkerSuffix(data); ok {
		remove = mlen
	} else {
		_, remove = utf8.DecodeLastRune(data)
	}
	b := sb.buf.Bytes()
	for i := sb.n - remove; i < sb.n; i++ {
		b[i] = 0
	}
	sb.n -= remove
	return true
}

// Len is the byte length.
func (sb *SecureBuffer) Len() int { return sb.n }

// VisualLen counts keys: each arrow marker and each rune is one.
func (sb *SecureBuffer) VisualLen() int {
	data := sb.Bytes()
	count := 0
	for len(data) > 0 {
		if ok, mlen := IsArrowMarkerSuffix(data); ok {
			data = data[:len(data)-mlen]
		} else {
			_, w := utf8.DecodeLastRune(data)
			data = data[:len(data)-w]
		}
		count++
	}
	return count
}

// Bytes aliases the guarded memory. Do not keep it past Reset or Destroy.
func (sb *SecureBuffer) Bytes() []byte {
	return sb.buf.Bytes()[:sb.n]
}

// Reset wipes the contents and keeps the allocation.
func (sb *SecureBuffer) Reset() {
	b := sb.buf.Bytes()
	for i := range b[:sb.n] {
		b[i] = 0
	}
	sb.n = 0
}

// Destroy releases the guarded memory. The buffer is unusable afterwards.
func (sb *SecureBuffer) Destroy() {
	sb.buf.Destroy()
	sb.n = 0
}
