package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sangkips/lanchonete-pos/pkg/format"
)

// ESC/POS control bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Alignment values for ESC a.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character sizes for GS !.
const (
	FontNormal = 0x00
	FontDouble = 0x11
)

// DefaultWidth is the character width of 58mm paper.
const DefaultWidth = 32

// Document accumulates an ESC/POS byte stream. Methods chain.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument starts a document for paper that fits width characters per line.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = DefaultWidth
	}
	d := &Document{width: width}
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// Width reports the configured characters per line.
func (d *Document) Width() int { return d.width }

func (d *Document) Align(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

func (d *Document) Bold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

func (d *Document) Size(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes s and ends the line.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

func (d *Document) Textf(f string, args ...any) *Document {
	return d.Text(fmt.Sprintf(f, args...))
}

// Feed advances the paper n lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// Rule prints a full-width line of char.
func (d *Document) Rule(char rune) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// Columns prints left flush left and right flush right on one line. The left
// side is shortened when both do not fit.
func (d *Document) Columns(left, right string) *Document {
	room := d.width - utf8.RuneCountInString(right) - 1
	left = format.Truncate(left, room)
	pad := d.width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if pad < 1 {
		pad = 1
	}
	return d.Text(left + strings.Repeat(" ", pad) + right)
}

// Item prints "2x X-Burger            16,00".
func (d *Document) Item(qty int, name, total string) *Document {
	return d.Columns(fmt.Sprintf("%dx %s", qty, name), total)
}

// Cut feeds past the tear bar and issues a partial cut.
func (d *Document) Cut() *Document {
	d.Feed(3)
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
