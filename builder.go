package mtext

import (
	"strconv"
	"strings"
)

// Builder writes MText markup. Methods chain; the first invalid argument is
// kept and reported by Err, and later calls still append.
type Builder struct {
	b   strings.Builder
	err error
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"{", `\{`,
	"}", `\}`,
	"^", "^ ",
	"\r\n", `\P`,
	"\n", `\P`,
	"\r", `\P`,
)

// stack expressions are cut at the divider and the semicolon.
var stackEscaper = strings.NewReplacer(
	`\`, `\\`,
	"/", `\/`,
	"#", `\#`,
	"^", `\^`,
	";", `\;`,
)

// String returns the markup written so far.
func (b *Builder) String() string { return b.b.String() }

// Err returns the first error recorded by a method.
func (b *Builder) Err() error { return b.err }

// Reset clears the markup and the error.
func (b *Builder) Reset() {
	b.b.Reset()
	b.err = nil
}

// Text appends text so that it reads back literally. Line breaks become
// paragraph breaks. %% codes are not escaped.
func (b *Builder) Text(s string) *Builder {
	textEscaper.WriteString(&b.b, s)
	return b
}

// Raw appends markup unchanged.
func (b *Builder) Raw(s string) *Builder {
	b.b.WriteString(s)
	return b
}

func (b *Builder) wrapped(on, off, s string) *Builder {
	b.b.WriteString(on)
	b.Text(s)
	b.b.WriteString(off)
	return b
}

// Underline appends s underlined.
func (b *Builder) Underline(s string) *Builder { return b.wrapped(`\L`, `\l`, s) }

// Overline appends s overlined.
func (b *Builder) Overline(s string) *Builder { return b.wrapped(`\O`, `\o`, s) }

// StrikeThrough appends s struck through.
func (b *Builder) StrikeThrough(s string) *Builder { return b.wrapped(`\K`, `\k`, s) }

// ACI selects an indexed color.
func (b *Builder) ACI(aci int) *Builder {
	if _, err := ACIColor(aci); err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	return b.command('C', strconv.Itoa(aci))
}

// RGB selects a true color.
func (b *Builder) RGB(c RGB) *Builder {
	return b.command('c', strconv.Itoa(RGB2Int(c)))
}

// Font selects a font family and style.
func (b *Builder) Font(family string, bold, italic bool) *Builder {
	flag := func(on bool) string {
		if on {
			return "1"
		}
		return "0"
	}
	return b.command('f', family+"|b"+flag(bold)+"|i"+flag(italic))
}

// Height sets the absolute cap height.
func (b *Builder) Height(h float64) *Builder { return b.command('H', formatFloat(h)) }

// ScaleHeight multiplies the cap height by f.
func (b *Builder) ScaleHeight(f float64) *Builder { return b.command('H', formatFloat(f)+"x") }

// WidthFactor sets the character width factor.
func (b *Builder) WidthFactor(f float64) *Builder { return b.command('W', formatFloat(f)) }

// CharTracking sets the character tracking factor.
func (b *Builder) CharTracking(f float64) *Builder { return b.command('T', formatFloat(f)) }

// Oblique sets the oblique angle in degrees.
func (b *Builder) Oblique(deg float64) *Builder { return b.command('Q', formatFloat(deg)) }

// LineAlign sets the vertical alignment within the line.
func (b *Builder) LineAlign(a LineAlign) *Builder {
	return b.command('A', strconv.Itoa(int(a)))
}

// Stack appends a stacked fraction. divider is '/', '#' or '^'.
func (b *Builder) Stack(numerator, denominator string, divider rune) *Builder {
	switch divider {
	case '/', '#', '^':
	default:
		divider = '/'
	}
	b.b.WriteString(`\S`)
	stackEscaper.WriteString(&b.b, numerator)
	b.b.WriteRune(divider)
	if divider == '^' {
		b.b.WriteByte(' ')
	}
	stackEscaper.WriteString(&b.b, denominator)
	b.b.WriteByte(';')
	return b
}

var paragraphAlignCodes = map[ParagraphAlign]byte{
	ParagraphLeft:        'l',
	ParagraphRight:       'r',
	ParagraphCenter:      'c',
	ParagraphJustified:   'j',
	ParagraphDistributed: 'd',
}

// Paragraph sets every paragraph property to p.
func (b *Builder) Paragraph(p Paragraph) *Builder {
	args := []string{
		"i" + formatFloat(p.Indent),
		"l" + formatFloat(p.Left),
		"r" + formatFloat(p.Right),
	}
	if code, ok := paragraphAlignCodes[p.Align]; ok {
		args = append(args, "q"+string(code))
	} else {
		args = append(args, "q*")
	}
	if len(p.TabStops) > 0 {
		stops := formatTabStops(p.TabStops)
		args = append(args, "t"+stops[1:len(stops)-1])
	}
	return b.command('p', strings.Join(args, ","))
}

// Group appends the markup written by fn inside braces, so formatting set
// there ends with the group.
func (b *Builder) Group(fn func(*Builder)) *Builder {
	b.b.WriteByte('{')
	fn(b)
	b.b.WriteByte('}')
	return b
}

// NewParagraph appends a paragraph break.
func (b *Builder) NewParagraph() *Builder { return b.Raw(`\P`) }

// NewColumn appends a column break.
func (b *Builder) NewColumn() *Builder { return b.Raw(`\N`) }

// NonBreakingSpace appends a non-breaking space.
func (b *Builder) NonBreakingSpace() *Builder { return b.Raw(`\~`) }

// Tab appends a tabulator.
func (b *Builder) Tab() *Builder { return b.Raw("^I") }

func (b *Builder) command(letter byte, arg string) *Builder {
	b.b.WriteByte('\\')
	b.b.WriteByte(letter)
	b.b.WriteString(arg)
	b.b.WriteByte(';')
	return b
}
