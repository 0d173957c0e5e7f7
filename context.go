package mtext

import (
	"math"
	"slices"
)

// Stroke is a set of line decorations.
type Stroke uint8

const (
	StrokeUnderline Stroke = 1 << iota
	StrokeOverline
	StrokeStrikeThrough
)

// LineAlign is the vertical alignment of text within a line.
type LineAlign uint8

const (
	AlignBottom LineAlign = iota
	AlignMiddle
	AlignTop
)

func (a LineAlign) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignTop:
		return "top"
	}
	return "bottom"
}

// FontStyle is regular or italic.
type FontStyle uint8

const (
	StyleRegular FontStyle = iota
	StyleItalic
)

func (s FontStyle) String() string {
	if s == StyleItalic {
		return "italic"
	}
	return "regular"
}

// Font weights as written by \f and \F.
const (
	WeightNormal = 400
	WeightBold   = 700
)

// FontFace describes the active font. An empty Family means unset.
type FontFace struct {
	Family string
	Style  FontStyle
	Weight int
}

// Scale is a size factor. Relative marks a multiplier of the inherited
// value instead of an absolute value.
type Scale struct {
	Value    float64
	Relative bool
}

func absScale(v float64, relative bool) Scale {
	return Scale{Value: math.Abs(v), Relative: relative}
}

// ParagraphAlign is the horizontal alignment of a paragraph.
type ParagraphAlign uint8

const (
	ParagraphDefault ParagraphAlign = iota
	ParagraphLeft
	ParagraphRight
	ParagraphCenter
	ParagraphJustified
	ParagraphDistributed
)

func (a ParagraphAlign) String() string {
	switch a {
	case ParagraphLeft:
		return "left"
	case ParagraphRight:
		return "right"
	case ParagraphCenter:
		return "center"
	case ParagraphJustified:
		return "justified"
	case ParagraphDistributed:
		return "distributed"
	}
	return "default"
}

// TabKind is the alignment of a tab stop.
type TabKind uint8

const (
	TabLeft TabKind = iota
	TabRight
	TabCenter
)

// TabStop is a tab position in units of the base character height.
type TabStop struct {
	Kind TabKind
	Pos  float64
}

// Paragraph holds paragraph layout. Indent and margins are factors of the
// entity's base character height.
type Paragraph struct {
	Indent   float64
	Left     float64
	Right    float64
	Align    ParagraphAlign
	TabStops []TabStop
}

// Context is a snapshot of the formatting state. A Context attached to a
// token is never modified; the tokenizer copies before every change.
type Context struct {
	Stroke       Stroke
	Color        Color
	Align        LineAlign
	Font         FontFace
	CapHeight    Scale
	WidthFactor  Scale
	CharTracking Scale
	Oblique      float64
	Paragraph    Paragraph
}

// DefaultContext returns the state at the start of an MText entity.
func DefaultContext() Context {
	return Context{
		Color:        Color{aci: ACIByLayer},
		Font:         FontFace{Weight: WeightNormal},
		CapHeight:    Scale{Value: 1},
		WidthFactor:  Scale{Value: 1},
		CharTracking: Scale{Value: 1},
	}
}

// Copy returns an independent snapshot.
func (c Context) Copy() Context {
	c.Paragraph.TabStops = slices.Clone(c.Paragraph.TabStops)
	return c
}

func (c *Context) setStroke(s Stroke, on bool) {
	if on {
		c.Stroke |= s
	} else {
		c.Stroke &^= s
	}
}

// Underline reports whether underlining is on.
func (c Context) Underline() bool { return c.Stroke&StrokeUnderline != 0 }

// Overline reports whether overlining is on.
func (c Context) Overline() bool { return c.Stroke&StrokeOverline != 0 }

// StrikeThrough reports whether strike-through is on.
func (c Context) StrikeThrough() bool { return c.Stroke&StrokeStrikeThrough != 0 }

// ContinueStroke reports whether any stroke is active, so a renderer keeps
// drawing it across spaces and paragraph breaks.
func (c Context) ContinueStroke() bool { return c.Stroke != 0 }

// SetUnderline turns underlining on or off.
func (c *Context) SetUnderline(on bool) { c.setStroke(StrokeUnderline, on) }

// SetOverline turns overlining on or off.
func (c *Context) SetOverline(on bool) { c.setStroke(StrokeOverline, on) }

// SetStrikeThrough turns strike-through on or off.
func (c *Context) SetStrikeThrough(on bool) { c.setStroke(StrokeStrikeThrough, on) }

// SetACI selects an indexed color and clears any RGB color.
func (c *Context) SetACI(aci int) error {
	col, err := ACIColor(aci)
	if err != nil {
		return err
	}
	c.Color = col
	return nil
}

// SetRGB selects a true color and clears the color index.
func (c *Context) SetRGB(rgb RGB) {
	c.Color = TrueColor(rgb)
}

// SetPackedRGB masks v to 24 bits and stores it as a true color.
func (c *Context) SetPackedRGB(v int) {
	c.SetRGB(Int2RGB(v & 0xFFFFFF))
}

// SetCapHeight stores the magnitude of v; the sign is dropped.
func (c *Context) SetCapHeight(v float64, relative bool) {
	c.CapHeight = absScale(v, relative)
}

// SetWidthFactor stores the magnitude of v; the sign is dropped.
func (c *Context) SetWidthFactor(v float64, relative bool) {
	c.WidthFactor = absScale(v, relative)
}

// SetCharTracking stores the magnitude of v; the sign is dropped.
func (c *Context) SetCharTracking(v float64, relative bool) {
	c.CharTracking = absScale(v, relative)
}

// Diff returns the fields of c that differ from prev.
func (c Context) Diff(prev Context) Field {
	var f Field
	flag := func(changed bool, field Field) {
		if changed {
			f |= field
		}
	}
	flag(c.Underline() != prev.Underline(), FieldUnderline)
	flag(c.Overline() != prev.Overline(), FieldOverline)
	flag(c.StrikeThrough() != prev.StrikeThrough(), FieldStrikeThrough)
	flag(!c.Color.Equal(prev.Color), FieldColor)
	flag(c.Align != prev.Align, FieldAlign)
	flag(c.Font.Family != prev.Font.Family, FieldFontFamily)
	flag(c.Font.Style != prev.Font.Style, FieldFontStyle)
	flag(c.Font.Weight != prev.Font.Weight, FieldFontWeight)
	flag(c.CapHeight != prev.CapHeight, FieldCapHeight)
	flag(c.WidthFactor != prev.WidthFactor, FieldWidthFactor)
	flag(c.CharTracking != prev.CharTracking, FieldCharTracking)
	flag(c.Oblique != prev.Oblique, FieldOblique)
	p, q := c.Paragraph, prev.Paragraph
	flag(p.Indent != q.Indent, FieldIndent)
	flag(p.Left != q.Left, FieldLeftMargin)
	flag(p.Right != q.Right, FieldRightMargin)
	flag(p.Align != q.Align, FieldParagraphAlign)
	flag(!slices.Equal(p.TabStops, q.TabStops), FieldTabStops)
	return f
}
