package mtext

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	maxMargin = 40
	sgrReset  = "\x1b[0m"
	nbsp      = "\u00a0"
)

// TextRenderer is a Sink that previews tokens on an ANSI terminal. It maps
// contexts to SGR attributes and wraps each paragraph to a width; it does
// not attempt real text layout.
type TextRenderer struct {
	w       io.Writer
	width   int
	styles  Styles
	cfg     renderConfig
	par     strings.Builder
	margin  int
	started bool
}

// NewTextRenderer creates a renderer writing to w. A width <= 0 disables
// wrapping.
func NewTextRenderer(w io.Writer, width int, theme Theme, opts ...RenderOption) *TextRenderer {
	cfg := renderConfig{tabSize: defaultTabSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	return &TextRenderer{w: w, width: width, styles: theme.Styles(), cfg: cfg}
}

// WriteToken appends tok to the current paragraph.
func (r *TextRenderer) WriteToken(tok Token) error {
	if tok.Kind == TokenPropertyChange {
		return nil
	}
	if !r.started {
		r.started = true
		if r.cfg.margins {
			r.margin = clampMargin(tok.Context.Paragraph.Left, r.width)
		}
	}
	switch tok.Kind {
	case TokenWord:
		r.styled(tok.Text, tok.Context, false)
	case TokenSpace:
		r.styled(" ", tok.Context, true)
	case TokenNonBreakingSpace:
		r.styled(nbsp, tok.Context, true)
	case TokenTab:
		r.styled(strings.Repeat(" ", r.cfg.tabSize), tok.Context, true)
	case TokenStack:
		r.styled(tok.Stack.Numerator+"/"+tok.Stack.Denominator, tok.Context, false)
	case TokenParagraph, TokenWrapAtDimLine:
		return r.flushParagraph()
	case TokenColumn:
		if err := r.flushParagraph(); err != nil {
			return err
		}
		_, err := io.WriteString(r.w, "\n")
		return err
	}
	return nil
}

// clampMargin converts a left margin to columns within [0, width-1], or
// within [0, maxMargin] when wrapping is off. NaN counts as zero.
func clampMargin(left float64, width int) int {
	limit := float64(maxMargin)
	if width > 0 {
		limit = float64(width - 1)
	}
	if !(left > 0) {
		return 0
	}
	return int(math.Min(math.Round(left), limit))
}

// Flush writes the pending paragraph.
func (r *TextRenderer) Flush() error {
	if !r.started {
		return nil
	}
	return r.flushParagraph()
}

func (r *TextRenderer) flushParagraph() error {
	text := r.par.String()
	r.par.Reset()
	r.started = false
	if width := r.width - r.margin; r.width > 0 && width > 0 {
		text = wordwrap.String(text, width)
		if r.cfg.softWrap {
			text = wrap.String(text, width)
		}
	}
	if r.margin > 0 {
		text = indent.String(text, uint(r.margin))
	}
	r.margin = 0
	if _, err := io.WriteString(r.w, text+"\n"); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// styled writes text with the SGR sequence of ctx. Spacing only keeps the
// strokes, and only while ContinueStroke holds.
func (r *TextRenderer) styled(text string, ctx Context, spacing bool) {
	var seq string
	if spacing {
		if ctx.ContinueStroke() {
			seq = r.strokeSGR(ctx, nil)
		}
	} else {
		seq = r.sgr(ctx)
	}
	if seq == "" {
		r.par.WriteString(text)
		return
	}
	r.par.WriteString(seq)
	r.par.WriteString(text)
	r.par.WriteString(sgrReset)
}

func (r *TextRenderer) sgr(ctx Context) string {
	var codes []string
	if r.styles.Attributes {
		if ctx.Font.Weight >= WeightBold {
			codes = append(codes, "1")
		}
		if ctx.Font.Style == StyleItalic {
			codes = append(codes, "3")
		}
	}
	if rgb, ok := r.color(ctx.Color); ok {
		codes = append(codes, "38;2;"+strconv.Itoa(int(rgb.R))+";"+strconv.Itoa(int(rgb.G))+";"+strconv.Itoa(int(rgb.B)))
	}
	return r.strokeSGR(ctx, codes)
}

func (r *TextRenderer) strokeSGR(ctx Context, codes []string) string {
	if r.styles.Attributes {
		if ctx.Underline() {
			codes = append(codes, "4")
		}
		if ctx.StrikeThrough() {
			codes = append(codes, "9")
		}
		if ctx.Overline() {
			codes = append(codes, "53")
		}
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func (r *TextRenderer) color(c Color) (RGB, bool) {
	if !r.styles.Colors {
		return RGB{}, false
	}
	if rgb, ok := c.RGB(); ok {
		return rgb, true
	}
	aci, _ := c.ACI()
	if aci == 7 && r.styles.Light {
		return RGB{}, true
	}
	return ACIToRGB(aci)
}
