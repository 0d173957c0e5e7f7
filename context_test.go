package mtext

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetACIRange(t *testing.T) {
	ctx := DefaultContext()
	for _, aci := range []int{-1, 257, 1000} {
		if err := ctx.SetACI(aci); !errors.Is(err, ErrColorRange) {
			t.Fatalf("SetACI(%d): expected ErrColorRange, got %v", aci, err)
		}
	}
	for _, aci := range []int{0, 7, 256} {
		if err := ctx.SetACI(aci); err != nil {
			t.Fatalf("SetACI(%d): %v", aci, err)
		}
		if got, ok := ctx.Color.ACI(); !ok || got != aci {
			t.Fatalf("expected aci %d, got %d (%v)", aci, got, ok)
		}
	}
}

func TestColorsAreExclusive(t *testing.T) {
	ctx := DefaultContext()
	ctx.SetRGB(RGB{1, 2, 3})
	if _, ok := ctx.Color.ACI(); ok {
		t.Fatalf("expected RGB to clear the color index")
	}
	if err := ctx.SetACI(5); err != nil {
		t.Fatalf("SetACI: %v", err)
	}
	if _, ok := ctx.Color.RGB(); ok {
		t.Fatalf("expected ACI to clear the RGB color")
	}
}

func TestSetPackedRGBMasks(t *testing.T) {
	ctx := DefaultContext()
	ctx.SetPackedRGB(0x7F123456)
	rgb, ok := ctx.Color.RGB()
	if !ok || rgb != (RGB{R: 0x56, G: 0x34, B: 0x12}) {
		t.Fatalf("unexpected color %v (%v)", rgb, ok)
	}
}

func TestRGBRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b += 17 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				if got := Int2RGB(RGB2Int(c)); got != c {
					t.Fatalf("round trip %v -> %v", c, got)
				}
			}
		}
	}
	if got := RGB2Int(RGB{R: 1}); got != 1 {
		t.Fatalf("expected component 0 in the low byte, got %#x", got)
	}
}

func TestScaleDropsSign(t *testing.T) {
	ctx := DefaultContext()
	ctx.SetCapHeight(-2, true)
	ctx.SetWidthFactor(-0.5, false)
	ctx.SetCharTracking(-1.5, true)
	want := []Scale{{2, true}, {0.5, false}, {1.5, true}}
	got := []Scale{ctx.CapHeight, ctx.WidthFactor, ctx.CharTracking}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scales mismatch (-want +got):\n%s", diff)
	}
}

func TestContextCopyIsIndependent(t *testing.T) {
	ctx := DefaultContext()
	ctx.Paragraph.TabStops = []TabStop{{Kind: TabRight, Pos: 2}}
	cp := ctx.Copy()
	cp.Paragraph.TabStops[0].Pos = 9
	cp.Font.Family = "Arial"
	if ctx.Paragraph.TabStops[0].Pos != 2 || ctx.Font.Family != "" {
		t.Fatalf("copy shares state with the original: %+v", ctx)
	}
}

func TestStrokes(t *testing.T) {
	ctx := DefaultContext()
	if ctx.ContinueStroke() {
		t.Fatalf("expected no stroke by default")
	}
	ctx.SetUnderline(true)
	ctx.SetStrikeThrough(true)
	if !ctx.Underline() || !ctx.StrikeThrough() || ctx.Overline() || !ctx.ContinueStroke() {
		t.Fatalf("unexpected strokes %b", ctx.Stroke)
	}
	ctx.SetUnderline(false)
	ctx.SetStrikeThrough(false)
	if ctx.ContinueStroke() {
		t.Fatalf("expected ContinueStroke to follow the stroke set")
	}
}

func TestContextDiff(t *testing.T) {
	prev := DefaultContext()
	next := prev.Copy()
	if got := next.Diff(prev); got != 0 {
		t.Fatalf("expected no difference, got %v", got)
	}
	next.SetOverline(true)
	next.SetRGB(RGB{R: 9})
	next.Paragraph.TabStops = []TabStop{{Pos: 1}}
	next.Font.Weight = WeightBold
	want := FieldOverline | FieldColor | FieldTabStops | FieldFontWeight
	if got := next.Diff(prev); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := want.String(); got != "overline|color|weight|tabs" {
		t.Fatalf("unexpected field names %q", got)
	}
}
