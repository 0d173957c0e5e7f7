package mtext

import (
	"strconv"
	"strings"
)

// parseProperty applies the property command letter, whose arguments start
// at the cursor, to a copy of ctx. On failure nothing past the command
// letter has been consumed.
func parseProperty(c *Cursor, letter rune, ctx Context) (Context, bool) {
	next := ctx.Copy()
	switch letter {
	case 'L', 'l':
		next.SetUnderline(letter == 'L')
	case 'O', 'o':
		next.SetOverline(letter == 'O')
	case 'K', 'k':
		next.SetStrikeThrough(letter == 'K')
	case 'A':
		next.Align = AlignBottom
		if r := c.Peek(0); r >= '0' && r <= '2' {
			next.Align = LineAlign(r - '0')
			c.Advance(1)
		}
	case 'C':
		digits, ok := scanDigits(c)
		if !ok {
			return ctx, false
		}
		// indices past 256 are consumed but have no effect
		if aci, err := strconv.Atoi(digits); err == nil && aci <= maxACI {
			if err := next.SetACI(aci); err != nil {
				return ctx, false
			}
		}
	case 'c':
		digits, ok := scanDigits(c)
		if !ok {
			return ctx, false
		}
		v := 0
		for _, d := range digits {
			v = (v*10 + int(d-'0')) & 0xFFFFFF
		}
		next.SetPackedRGB(v)
	case 'H':
		if v, rel, ok := scanFloat(c, true); ok {
			next.SetCapHeight(v, rel)
		}
	case 'W':
		if v, rel, ok := scanFloat(c, true); ok {
			next.SetWidthFactor(v, rel)
		}
	case 'T':
		if v, rel, ok := scanFloat(c, true); ok {
			next.SetCharTracking(v, rel)
		}
	case 'Q':
		if v, _, ok := scanFloat(c, false); ok {
			next.Oblique = v
		}
	case 'p':
		next.Paragraph = parseParagraph(c.extract(';', false), next.Paragraph)
		return next, true
	case 'f', 'F':
		next.Font = parseFont(c.extract(';', false), next.Font)
		return next, true
	default:
		return ctx, false
	}
	c.consumeIf(';')
	return next, true
}

// parseParagraph applies the arguments of \p to p. Fields the expression
// does not name keep their value.
func parseParagraph(expr string, p Paragraph) Paragraph {
	c := NewCursor(expr)
	for c.HasData() {
		switch c.Get() {
		case 'i':
			if v, _, ok := scanFloat(c, false); ok {
				p.Indent = v
			}
		case 'l':
			if v, _, ok := scanFloat(c, false); ok {
				p.Left = v
			}
		case 'r':
			if v, _, ok := scanFloat(c, false); ok {
				p.Right = v
			}
		case 'q':
			p.Align = paragraphAligns[c.Get()]
		case 't':
			p.TabStops = parseTabStops(c.Remainder())
			c.Advance(c.Len())
		}
	}
	return p
}

var paragraphAligns = map[rune]ParagraphAlign{
	'l': ParagraphLeft,
	'r': ParagraphRight,
	'c': ParagraphCenter,
	'j': ParagraphJustified,
	'd': ParagraphDistributed,
}

// parseTabStops reads a comma separated list like "1,r2.5,c4". Entries that
// are not numbers are skipped.
func parseTabStops(list string) []TabStop {
	var stops []TabStop
	for _, entry := range strings.Split(list, ",") {
		kind := TabLeft
		switch {
		case strings.HasPrefix(entry, "r"):
			kind, entry = TabRight, entry[1:]
		case strings.HasPrefix(entry, "c"):
			kind, entry = TabCenter, entry[1:]
		}
		c := NewCursor(entry)
		if v, _, ok := scanFloat(c, false); ok {
			stops = append(stops, TabStop{Kind: kind, Pos: v})
		}
	}
	return stops
}

// parseFont reads "family|b1|i0|c0|p34". An empty family leaves font as it
// is; otherwise flags not given reset to regular and normal weight.
func parseFont(expr string, font FontFace) FontFace {
	fields := strings.Split(expr, "|")
	if fields[0] == "" {
		return font
	}
	font = FontFace{Family: fields[0], Style: StyleRegular, Weight: WeightNormal}
	for _, f := range fields[1:] {
		switch {
		case strings.HasPrefix(f, "b1"):
			font.Weight = WeightBold
		case strings.HasPrefix(f, "i1"):
			font.Style = StyleItalic
		}
	}
	return font
}

// parseStack reads a stacking expression after \S up to the terminating
// semicolon. Inside it carets are plain characters, control characters
// become spaces and a backslash keeps only the character it escapes.
func parseStack(c *Cursor) Stack {
	sc := NewCursor(c.extract(';', true))
	next := func() (r rune, escaped bool) {
		if sc.Peek(0) == '\\' && sc.Peek(1) != EOF {
			sc.Advance(1)
			escaped = true
		}
		r = sc.Get()
		if r < 0x20 {
			r = ' '
		}
		return r, escaped
	}
	var num, den strings.Builder
	var s Stack
	for sc.HasData() {
		r, escaped := next()
		if !escaped && (r == '/' || r == '#' || r == '^') {
			s.Divider = r
			break
		}
		num.WriteRune(r)
	}
	if s.Divider != 0 {
		for sc.HasData() {
			r, _ := next()
			den.WriteRune(r)
		}
	}
	s.Numerator = num.String()
	s.Denominator = den.String()
	if s.Divider == '^' {
		s.Denominator = strings.TrimLeft(s.Denominator, " ")
	}
	return s
}
