package mtext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/text/unicode/runenames"
)

// DumpWriter is a Sink that lists tokens one per line, for inspecting what
// the tokenizer produced.
type DumpWriter struct {
	w *bufio.Writer
	// MaxText truncates word and stack payloads wider than MaxText cells.
	// Zero keeps them whole.
	MaxText int
	// RuneNames adds a line with the Unicode name of every non-ASCII rune
	// in a word.
	RuneNames bool
}

// NewDumpWriter returns a DumpWriter writing to w.
func NewDumpWriter(w io.Writer) *DumpWriter {
	return &DumpWriter{w: bufio.NewWriter(w)}
}

func (d *DumpWriter) WriteToken(tok Token) error {
	var payload string
	switch tok.Kind {
	case TokenWord:
		payload = strconv.Quote(d.fit(tok.Text))
	case TokenStack:
		div := "none"
		if tok.Stack.Divider != 0 {
			div = string(tok.Stack.Divider)
		}
		payload = fmt.Sprintf("%s %s %s", strconv.Quote(d.fit(tok.Stack.Numerator)), div, strconv.Quote(d.fit(tok.Stack.Denominator)))
	case TokenPropertyChange:
		payload = "\\" + string(tok.Change.Command) + " " + DescribeFields(tok.Change.Fields, tok.Context)
		if tok.Change.Command == '}' {
			payload = "} " + DescribeFields(tok.Change.Fields, tok.Context)
		}
	}
	line := strings.TrimRight(fmt.Sprintf("%-16s %s", tok.Kind, payload), " ")
	if _, err := fmt.Fprintln(d.w, line); err != nil {
		return err
	}
	if d.RuneNames && tok.Kind == TokenWord {
		return d.writeRuneNames(tok.Text)
	}
	return nil
}

func (d *DumpWriter) Flush() error {
	return d.w.Flush()
}

func (d *DumpWriter) fit(s string) string {
	if d.MaxText <= 0 || ansi.PrintableRuneWidth(s) <= d.MaxText {
		return s
	}
	return truncate.StringWithTail(s, uint(d.MaxText), "…")
}

func (d *DumpWriter) writeRuneNames(text string) error {
	seen := map[rune]bool{}
	for _, r := range text {
		if r < 0x80 || seen[r] {
			continue
		}
		seen[r] = true
		name := runenames.Name(r)
		if name == "" {
			name = "<unnamed>"
		}
		if _, err := fmt.Fprintf(d.w, "\tU+%04X %s\n", r, name); err != nil {
			return err
		}
	}
	return nil
}

// DescribeFields formats the values of fields in ctx as name=value pairs.
func DescribeFields(fields Field, ctx Context) string {
	var parts []string
	add := func(f Field, value string) {
		if fields.Has(f) {
			parts = append(parts, fieldNames[fieldIndex(f)]+"="+value)
		}
	}
	add(FieldUnderline, strconv.FormatBool(ctx.Underline()))
	add(FieldOverline, strconv.FormatBool(ctx.Overline()))
	add(FieldStrikeThrough, strconv.FormatBool(ctx.StrikeThrough()))
	add(FieldColor, ctx.Color.String())
	add(FieldAlign, ctx.Align.String())
	add(FieldFontFamily, strconv.Quote(ctx.Font.Family))
	add(FieldFontStyle, ctx.Font.Style.String())
	add(FieldFontWeight, strconv.Itoa(ctx.Font.Weight))
	add(FieldCapHeight, formatScale(ctx.CapHeight))
	add(FieldWidthFactor, formatScale(ctx.WidthFactor))
	add(FieldCharTracking, formatScale(ctx.CharTracking))
	add(FieldOblique, formatFloat(ctx.Oblique))
	add(FieldIndent, formatFloat(ctx.Paragraph.Indent))
	add(FieldLeftMargin, formatFloat(ctx.Paragraph.Left))
	add(FieldRightMargin, formatFloat(ctx.Paragraph.Right))
	add(FieldParagraphAlign, ctx.Paragraph.Align.String())
	add(FieldTabStops, formatTabStops(ctx.Paragraph.TabStops))
	return strings.Join(parts, " ")
}

func fieldIndex(f Field) int {
	i := 0
	for f > 1 {
		f >>= 1
		i++
	}
	return i
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatScale(s Scale) string {
	if s.Relative {
		return formatFloat(s.Value) + "x"
	}
	return formatFloat(s.Value)
}

func formatTabStops(stops []TabStop) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		prefix := ""
		switch s.Kind {
		case TabRight:
			prefix = "r"
		case TabCenter:
			prefix = "c"
		}
		parts[i] = prefix + formatFloat(s.Pos)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
