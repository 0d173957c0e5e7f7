package mtext

import (
	"strconv"
	"strings"
)

// Token is one unit of the decoded text with the formatting active at its
// position.
type Token struct {
	Kind    TokenKind
	Text    string
	Stack   Stack
	Change  PropertyChange
	Context Context
}

// TokenKind identifies the payload of a Token.
type TokenKind uint8

const (
	// TokenWord carries a run of text in Text.
	TokenWord TokenKind = iota + 1
	// TokenSpace is a breaking space.
	TokenSpace
	// TokenNonBreakingSpace is written as \~.
	TokenNonBreakingSpace
	// TokenTab is a tabulator.
	TokenTab
	// TokenParagraph starts a new paragraph.
	TokenParagraph
	// TokenColumn starts a new column.
	TokenColumn
	// TokenWrapAtDimLine wraps dimension text at the dimension line.
	TokenWrapAtDimLine
	// TokenStack carries a stacked fraction in Stack.
	TokenStack
	// TokenPropertyChange carries the changed fields in Change. Only
	// emitted with WithPropertyChanges(true).
	TokenPropertyChange
)

var tokenKindNames = [...]string{
	TokenWord:             "WORD",
	TokenSpace:            "SPACE",
	TokenNonBreakingSpace: "NBSP",
	TokenTab:              "TAB",
	TokenParagraph:        "PARAGRAPH",
	TokenColumn:           "COLUMN",
	TokenWrapAtDimLine:    "WRAP_AT_DIMLINE",
	TokenStack:            "STACK",
	TokenPropertyChange:   "PROPERTY_CHANGE",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Stack is a stacked fraction. Divider is '/', '#' or '^', or 0 when the
// expression had no divider.
type Stack struct {
	Numerator   string
	Denominator string
	Divider     rune
}

// PropertyChange names the command that changed the context and the fields
// it changed. The new values are in the token's Context. Command is '}'
// when a group close restored an earlier context.
type PropertyChange struct {
	Command rune
	Fields  Field
}

// Field is a set of Context fields.
type Field uint32

const (
	FieldUnderline Field = 1 << iota
	FieldOverline
	FieldStrikeThrough
	FieldColor
	FieldAlign
	FieldFontFamily
	FieldFontStyle
	FieldFontWeight
	FieldCapHeight
	FieldWidthFactor
	FieldCharTracking
	FieldOblique
	FieldIndent
	FieldLeftMargin
	FieldRightMargin
	FieldParagraphAlign
	FieldTabStops
)

var fieldNames = []string{
	"underline",
	"overline",
	"strike",
	"color",
	"align",
	"font",
	"style",
	"weight",
	"height",
	"width",
	"tracking",
	"oblique",
	"indent",
	"left",
	"right",
	"paragraph-align",
	"tabs",
}

// Has reports whether all fields in g are set in f.
func (f Field) Has(g Field) bool { return f&g == g }

func (f Field) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for i, name := range fieldNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
