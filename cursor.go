package mtext

// EOF is returned by Cursor.Peek past the end of the text.
const EOF rune = -1

// Cursor scans an immutable rune sequence. It knows nothing about markup.
type Cursor struct {
	text []rune
	pos  int
}

// NewCursor returns a cursor positioned at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: []rune(text)}
}

// Pos returns the current offset in runes.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the text in runes.
func (c *Cursor) Len() int { return len(c.text) }

// HasData reports whether unconsumed runes remain.
func (c *Cursor) HasData() bool { return c.pos < len(c.text) }

// Peek returns the rune at the current offset plus offset, or EOF.
func (c *Cursor) Peek(offset int) rune {
	i := c.pos + offset
	if i < 0 || i >= len(c.text) {
		return EOF
	}
	return c.text[i]
}

// Get returns the current rune and advances past it.
func (c *Cursor) Get() rune {
	r := c.Peek(0)
	c.Advance(1)
	return r
}

// Advance moves the cursor by n runes, clamped to [0, Len]. A negative n
// rewinds.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos < 0 {
		c.pos = 0
	}
	if c.pos > len(c.text) {
		c.pos = len(c.text)
	}
}

// Find returns the distance from the current offset to the next occurrence
// of r, or -1. With escape set a backslash and the rune after it are skipped
// as a pair.
func (c *Cursor) Find(r rune, escape bool) int {
	for i := c.pos; i < len(c.text); i++ {
		ch := c.text[i]
		if escape && ch == '\\' {
			i++
			continue
		}
		if ch == r {
			return i - c.pos
		}
	}
	return -1
}

// Remainder returns the unconsumed suffix.
func (c *Cursor) Remainder() string {
	return string(c.text[c.pos:])
}

// Slice returns the text between two absolute offsets, clamped.
func (c *Cursor) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(c.text) {
		to = len(c.text)
	}
	if from >= to {
		return ""
	}
	return string(c.text[from:to])
}

// extract consumes everything up to the next terminator and the terminator
// itself. Without a terminator the remainder is consumed.
func (c *Cursor) extract(term rune, escape bool) string {
	stop := c.Find(term, escape)
	if stop < 0 {
		expr := c.Remainder()
		c.pos = len(c.text)
		return expr
	}
	expr := c.Slice(c.pos, c.pos+stop)
	c.Advance(stop + 1)
	return expr
}

func (c *Cursor) consumeIf(r rune) bool {
	if c.Peek(0) == r {
		c.Advance(1)
		return true
	}
	return false
}
