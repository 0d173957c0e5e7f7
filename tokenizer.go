package mtext

import (
	"iter"
	"slices"
	"strings"
)

// Tokenizer decodes MText markup into tokens on demand. Each call to Next
// scans only as far as needed for one token, so a caller may stop at any
// point. A Tokenizer is not safe for concurrent use; separate instances
// share nothing.
type Tokenizer struct {
	cur             *Cursor
	ctx             Context
	reported        Context
	groups          []Context
	word            strings.Builder
	queue           [2]Token
	head, tail      int
	propertyChanges bool
}

// NewTokenizer returns a tokenizer over text.
func NewTokenizer(text string, opts ...Option) *Tokenizer {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	ctx := DefaultContext()
	if cfg.ctx != nil {
		ctx = *cfg.ctx
	}
	return &Tokenizer{
		cur:             NewCursor(text),
		ctx:             ctx,
		reported:        ctx,
		propertyChanges: cfg.propertyChanges,
	}
}

// Tokenize decodes the whole of text.
func Tokenize(text string, opts ...Option) []Token {
	return slices.Collect(NewTokenizer(text, opts...).All())
}

// Context returns the current formatting state.
func (t *Tokenizer) Context() Context { return t.ctx }

// Next returns the next token; ok is false once the input is exhausted.
func (t *Tokenizer) Next() (tok Token, ok bool) {
	for t.head == t.tail {
		t.head, t.tail = 0, 0
		if !t.step() {
			return Token{}, false
		}
	}
	tok = t.queue[t.head]
	t.queue[t.head] = Token{}
	t.head++
	return tok, true
}

// All yields the remaining tokens.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

func (t *Tokenizer) push(tok Token) {
	t.queue[t.tail] = tok
	t.tail++
}

func (t *Tokenizer) flushWord() {
	if t.word.Len() == 0 {
		return
	}
	t.push(Token{Kind: TokenWord, Text: t.word.String(), Context: t.ctx})
	t.word.Reset()
}

// emit ends the pending word and queues a token of kind.
func (t *Tokenizer) emit(kind TokenKind) {
	t.flushWord()
	t.push(Token{Kind: kind, Context: t.ctx})
}

// setContext installs ctx after flushing the word written under the old one.
func (t *Tokenizer) setContext(ctx Context, cmd rune) {
	t.flushWord()
	t.ctx = ctx
	if !t.propertyChanges {
		return
	}
	fields := ctx.Diff(t.reported)
	if fields == 0 {
		return
	}
	t.reported = ctx
	t.push(Token{
		Kind:    TokenPropertyChange,
		Change:  PropertyChange{Command: cmd, Fields: fields},
		Context: ctx,
	})
}

// step consumes one decision unit. It returns false at the end of input
// once the pending word has been flushed.
func (t *Tokenizer) step() bool {
	c := t.cur
	if !c.HasData() {
		if t.word.Len() > 0 {
			t.flushWord()
			return true
		}
		return false
	}
	r := c.Peek(0)
	switch {
	case r < 0x20:
		c.Advance(1)
		switch r {
		case '\t':
			t.emit(TokenTab)
		case '\n':
			t.emit(TokenParagraph)
		default:
			t.word.WriteByte(' ')
		}
	case r == '\\':
		t.command()
	case r == '%' && c.Peek(1) == '%' && c.Peek(2) != EOF:
		t.special()
	case r == ' ':
		c.Advance(1)
		t.emit(TokenSpace)
	case r == '{':
		c.Advance(1)
		t.flushWord()
		t.groups = append(t.groups, t.ctx)
	case r == '}':
		c.Advance(1)
		t.flushWord()
		if n := len(t.groups); n > 0 {
			ctx := t.groups[n-1]
			t.groups = t.groups[:n-1]
			t.setContext(ctx, '}')
		}
	case r == '^':
		t.caret()
	default:
		c.Advance(1)
		t.word.WriteRune(r)
	}
	return true
}

// caret decodes caret notation outside of stacking expressions.
func (t *Tokenizer) caret() {
	c := t.cur
	next := c.Peek(1)
	switch next {
	case EOF:
		c.Advance(1)
		t.word.WriteByte('^')
		return
	case ' ':
		t.word.WriteByte('^')
	case 'I':
		t.emit(TokenTab)
	case 'J':
		t.emit(TokenParagraph)
	case 'M':
	default:
		t.word.WriteRune(replacementGlyph)
	}
	c.Advance(2)
}

var specialGlyphs = map[rune]rune{
	'c': '⌀',
	'd': '°',
	'p': '±',
}

// special replaces %%c, %%d and %%p. Other %% codes are dropped.
func (t *Tokenizer) special() {
	code := t.cur.Peek(2)
	if code >= 'A' && code <= 'Z' {
		code += 'a' - 'A'
	}
	if g, ok := specialGlyphs[code]; ok {
		t.word.WriteRune(g)
	}
	t.cur.Advance(3)
}

// command handles everything introduced by a backslash.
func (t *Tokenizer) command() {
	c := t.cur
	letter := c.Peek(1)
	switch letter {
	case EOF:
		c.Advance(1)
		t.word.WriteByte('\\')
	case '\\', '{', '}':
		c.Advance(2)
		t.word.WriteRune(letter)
	case '~':
		c.Advance(2)
		t.emit(TokenNonBreakingSpace)
	case 'P':
		c.Advance(2)
		t.emit(TokenParagraph)
	case 'N':
		c.Advance(2)
		t.emit(TokenColumn)
	case 'X':
		c.Advance(2)
		t.emit(TokenWrapAtDimLine)
	case 'S':
		c.Advance(2)
		stack := parseStack(c)
		t.flushWord()
		t.push(Token{Kind: TokenStack, Stack: stack, Context: t.ctx})
	case 'M', 'm':
		t.doubleByte()
	default:
		t.property(letter)
	}
}

// doubleByte decodes \M+XXXX. Anything else after \M is literal text.
func (t *Tokenizer) doubleByte() {
	c := t.cur
	if c.Peek(2) == '+' {
		var b [2]byte
		ok := true
		for i := 0; i < 4 && ok; i++ {
			v, isHex := hexValue(c.Peek(3 + i))
			ok = isHex
			b[i/2] = b[i/2]<<4 | v
		}
		if ok {
			c.Advance(7)
			t.word.WriteRune(decodeDoubleByte(b[0], b[1]))
			return
		}
	}
	t.word.WriteRune('\\')
	t.word.WriteRune(c.Peek(1))
	c.Advance(2)
}

func hexValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}

// property runs a property command. A command that does not parse leaves
// the context alone and the consumed characters become literal text.
func (t *Tokenizer) property(letter rune) {
	c := t.cur
	start := c.Pos()
	c.Advance(2)
	ctx, ok := parseProperty(c, letter, t.ctx)
	if !ok {
		t.word.WriteString(c.Slice(start, c.Pos()))
		return
	}
	t.setContext(ctx, letter)
}
