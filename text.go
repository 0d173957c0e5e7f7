package mtext

import (
	"sort"
	"strings"
)

// CaretDecode decodes caret notation in text: "^I" is a tab, "^J" a line
// feed, "^M" a carriage return and "^ " a literal caret. A caret before any
// other character becomes the replacement glyph; a trailing caret is kept.
// Each caret is decoded once, so the output must not be decoded again.
func CaretDecode(text string) string {
	if !strings.Contains(text, "^") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '^' || i+1 == len(runes) {
			b.WriteRune(r)
			continue
		}
		i++
		switch runes[i] {
		case ' ':
			b.WriteByte('^')
		case 'I':
			b.WriteByte('\t')
		case 'J':
			b.WriteByte('\n')
		case 'M':
			b.WriteByte('\r')
		default:
			b.WriteRune(replacementGlyph)
		}
	}
	return b.String()
}

var lineEndingReplacer = strings.NewReplacer("\r\n", `\P`, "\r", `\P`, "\n", `\P`)

// NormalizeLineEndings replaces CR, LF and CR+LF with the paragraph break
// command \P.
func NormalizeLineEndings(text string) string {
	return lineEndingReplacer.Replace(text)
}

// HasInlineFormattingCodes reports whether text contains a backslash
// command other than the always literal \P and \~. A trailing lone
// backslash does not count.
func HasInlineFormattingCodes(text string) bool {
	for i := 0; i+1 < len(text); i++ {
		if text[i] != '\\' {
			continue
		}
		next := text[i+1]
		i++
		if next == 'P' || next == '~' {
			continue
		}
		return true
	}
	return false
}

// FontFamilies returns the sorted set of font families selected by \f and
// \F commands in text.
func FontFamilies(text string) []string {
	seen := map[string]struct{}{}
	for tok := range NewTokenizer(text, WithPropertyChanges(true)).All() {
		if tok.Kind != TokenPropertyChange || !tok.Change.Fields.Has(FieldFontFamily) {
			continue
		}
		if family := tok.Context.Font.Family; family != "" {
			seen[family] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlainText returns text with all formatting removed. Paragraph and column
// breaks become line feeds, tabs become tabSize spaces (a literal tab when
// tabSize <= 0) and stacked fractions are written as numerator/denominator.
func PlainText(text string, tabSize int) string {
	return strings.Join(PlainLines(text, tabSize), "\n")
}

// PlainLines is PlainText split into lines.
func PlainLines(text string, tabSize int) []string {
	tab := "\t"
	if tabSize > 0 {
		tab = strings.Repeat(" ", tabSize)
	}
	var lines []string
	var b strings.Builder
	for tok := range NewTokenizer(text).All() {
		switch tok.Kind {
		case TokenWord:
			b.WriteString(tok.Text)
		case TokenSpace, TokenNonBreakingSpace:
			b.WriteByte(' ')
		case TokenTab:
			b.WriteString(tab)
		case TokenStack:
			b.WriteString(tok.Stack.Numerator)
			b.WriteByte('/')
			b.WriteString(tok.Stack.Denominator)
		case TokenParagraph, TokenColumn:
			lines = append(lines, b.String())
			b.Reset()
		}
	}
	return append(lines, b.String())
}
