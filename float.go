package mtext

import (
	"errors"
	"strconv"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// scanFloat consumes the longest floating literal at the cursor:
//
//	[+-]? ( digits ( '.' digits* )? | '.' digits ) ( [eE] [+-]? digits )?
//
// followed by an optional 'x' when allowRelative is set. Nothing is consumed
// when no literal matches.
func scanFloat(c *Cursor, allowRelative bool) (v float64, relative bool, ok bool) {
	i := 0
	if r := c.Peek(0); r == '+' || r == '-' {
		i++
	}
	intDigits := 0
	for isDigit(c.Peek(i)) {
		i++
		intDigits++
	}
	fracDigits := 0
	if c.Peek(i) == '.' {
		j := i + 1
		for isDigit(c.Peek(j)) {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, false, false
	}
	if r := c.Peek(i); r == 'e' || r == 'E' {
		j := i + 1
		if s := c.Peek(j); s == '+' || s == '-' {
			j++
		}
		expDigits := 0
		for isDigit(c.Peek(j)) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	start := c.Pos()
	v, err := strconv.ParseFloat(c.Slice(start, start+i), 64)
	// overflowing exponents still match the grammar
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false, false
	}
	if allowRelative && c.Peek(i) == 'x' {
		relative = true
		i++
	}
	c.Advance(i)
	return v, relative, true
}

// scanDigits consumes a run of decimal digits.
func scanDigits(c *Cursor) (string, bool) {
	n := 0
	for isDigit(c.Peek(n)) {
		n++
	}
	if n == 0 {
		return "", false
	}
	start := c.Pos()
	c.Advance(n)
	return c.Slice(start, start+n), true
}
