// ABOUTME: Byte-at-a-time key decoder over an unbuffered reader (stdin in raw mode)
// ABOUTME: Reads only the bytes one event needs so later reads see the rest

package key

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/mauromedda/promptline/internal/log"
)

// Decoder turns a byte stream into Key events. It performs no buffering
// across calls, so the underlying reader must not be wrapped in a buffered
// reader shared with other consumers.
type Decoder struct {
	r   io.Reader
	buf [utf8.UTFMax]byte
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next blocks until one key event is available. It returns io.EOF when the
// stream ends before the first byte of an event.
func (d *Decoder) Next() (Key, error) {
	b, err := d.readByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Key{}, io.EOF
		}
		return Key{}, err
	}

	switch b {
	case 0x1b:
		return d.escape(), nil
	case 0x09:
		return Tab, nil
	case 0x0a:
		return Newline, nil
	case 0x7f:
		return Delete, nil
	}

	if w := leadWidth(b); w > 1 {
		return d.scalar(b, w), nil
	}
	return Char(rune(b)), nil
}

// escape decodes the two bytes following ESC.
func (d *Decoder) escape() Key {
	seq := d.buf[:2]
	if _, err := io.ReadFull(d.r, seq); err != nil {
		log.Debug("key: truncated escape sequence: %v", err)
		return BadSymbol
	}
	if seq[0] == '[' {
		if t, ok := arrowFinals[seq[1]]; ok {
			return Key{Type: t}
		}
	}
	return Escape(rune(seq[1]))
}

// scalar reads the continuation bytes of a w-byte UTF-8 sequence.
func (d *Decoder) scalar(lead byte, w int) Key {
	d.buf[0] = lead
	n, err := io.ReadFull(d.r, d.buf[1:w])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			log.Debug("key: input ended after %d of %d bytes", n+1, w)
			return Empty
		}
		log.Debug("key: read continuation bytes: %v", err)
		return BadSymbol
	}
	r, size := utf8.DecodeRune(d.buf[:w])
	if r == utf8.RuneError || size != w {
		log.Debug("key: malformed utf-8 % x", d.buf[:w])
		return BadSymbol
	}
	return Char(r)
}

func (d *Decoder) readByte() (byte, error) {
	for {
		n, err := d.r.Read(d.buf[:1])
		if n == 1 {
			return d.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// leadWidth returns the total length of the UTF-8 sequence introduced by b,
// or 1 for ASCII, continuation bytes, and invalid leads.
func leadWidth(b byte) int {
	switch {
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 1
}
