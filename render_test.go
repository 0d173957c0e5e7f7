package mtext

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func renderString(t *testing.T, src string, width int, themeName string, opts ...RenderOption) string {
	t.Helper()
	theme, ok := ThemeByName(themeName)
	if !ok {
		t.Fatalf("unknown theme %q", themeName)
	}
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:        strings.NewReader(src),
		Writer:        &out,
		Width:         width,
		Theme:         theme,
		RenderOptions: opts,
	})
	if err != nil {
		t.Fatalf("render %q: %v", src, err)
	}
	return out.String()
}

func TestRenderPlainParagraphs(t *testing.T) {
	got := renderString(t, `Hello world\Pnext`, 0, "boring")
	if got != "Hello world\nnext\n" {
		t.Fatalf("unexpected output %q", got)
	}
	got = renderString(t, `a\Nb`, 0, "boring")
	if got != "a\n\nb\n" {
		t.Fatalf("expected a blank line between columns, got %q", got)
	}
	if got := renderString(t, "", 0, "boring"); got != "" {
		t.Fatalf("expected no output, got %q", got)
	}
}

func TestRenderWrapsToWidth(t *testing.T) {
	got := renderString(t, "Hello world", 5, "boring")
	if got != "Hello\nworld\n" {
		t.Fatalf("unexpected output %q", got)
	}
	got = renderString(t, "abcdefgh", 4, "boring", WithSoftWrap(true))
	if got != "abcd\nefgh\n" {
		t.Fatalf("expected soft wrap, got %q", got)
	}
}

func TestRenderMarginsAndTabs(t *testing.T) {
	got := renderString(t, `\pl4;ab`, 0, "boring", WithMargins(true))
	if got != "    ab\n" {
		t.Fatalf("unexpected output %q", got)
	}
	got = renderString(t, `\pl4;ab`, 0, "boring")
	if got != "ab\n" {
		t.Fatalf("expected margins to be off by default, got %q", got)
	}
	got = renderString(t, "a^Ib", 0, "boring", WithTabSize(2))
	if got != "a  b\n" {
		t.Fatalf("unexpected tab expansion %q", got)
	}
	got = renderString(t, `a\~b \S1/2;`, 0, "boring")
	if got != "a\u00a0b 1/2\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderBoundsHugeMargins(t *testing.T) {
	got := renderString(t, `\pl1e12;ab`, 10, "boring", WithMargins(true))
	if got != strings.Repeat(" ", 9)+"ab\n" {
		t.Fatalf("expected the margin clamped to the width, got %q", got)
	}
	got = renderString(t, `\pl1e400;ab`, 0, "boring", WithMargins(true))
	if got != strings.Repeat(" ", maxMargin)+"ab\n" {
		t.Fatalf("expected the margin clamped without a width, got %q", got)
	}
}

func TestClampMargin(t *testing.T) {
	tests := []struct {
		left  float64
		width int
		want  int
	}{
		{-3, 80, 0},
		{0, 80, 0},
		{2.6, 80, 3},
		{1e30, 80, 79},
		{math.Inf(1), 0, maxMargin},
		{math.NaN(), 80, 0},
		{5, 1, 0},
	}
	for _, tt := range tests {
		if got := clampMargin(tt.left, tt.width); got != tt.want {
			t.Errorf("clampMargin(%v, %d) = %d, want %d", tt.left, tt.width, got, tt.want)
		}
	}
}

func TestRenderAttributes(t *testing.T) {
	got := renderString(t, `\fArial|b1|i1;x`, 0, "mono")
	if got != "\x1b[1;3mx\x1b[0m\n" {
		t.Fatalf("unexpected output %q", got)
	}
	got = renderString(t, `\La b`, 0, "mono")
	want := "\x1b[4ma\x1b[0m\x1b[4m \x1b[0m\x1b[4mb\x1b[0m\n"
	if got != want {
		t.Fatalf("expected the underline to continue over the space, got %q", got)
	}
	got = renderString(t, `\La\l b`, 0, "mono")
	if got != "\x1b[4ma\x1b[0m b\n" {
		t.Fatalf("unexpected output %q", got)
	}
	got = renderString(t, `\K\Ox`, 0, "mono")
	if got != "\x1b[9;53mx\x1b[0m\n" {
		t.Fatalf("unexpected output %q", got)
	}
	got = renderString(t, `\C1;\Lx`, 0, "boring")
	if got != "x\n" {
		t.Fatalf("expected the boring theme to drop styling, got %q", got)
	}
}

func TestRenderColors(t *testing.T) {
	tests := []struct {
		theme, src, want string
	}{
		{"default", "plain", "plain\n"},
		{"default", `\C1;x`, "\x1b[38;2;255;0;0mx\x1b[0m\n"},
		{"dark", `\C7;x`, "\x1b[38;2;255;255;255mx\x1b[0m\n"},
		{"light", `\C7;x`, "\x1b[38;2;0;0;0mx\x1b[0m\n"},
		{"default", `\c16711680;x`, "\x1b[38;2;0;0;255mx\x1b[0m\n"},
		{"mono", `\C1;x`, "x\n"},
	}
	for _, tt := range tests {
		if got := renderString(t, tt.src, 0, tt.theme); got != tt.want {
			t.Errorf("%s %q: got %q, want %q", tt.theme, tt.src, got, tt.want)
		}
	}
}

func TestRenderRequiresWriter(t *testing.T) {
	if err := Render(RenderRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected an error for a nil writer")
	}
	if err := Render(RenderRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected an error for a nil reader")
	}
}

func TestACIToRGB(t *testing.T) {
	tests := []struct {
		aci  int
		want RGB
		ok   bool
	}{
		{0, RGB{}, false},
		{256, RGB{}, false},
		{1, RGB{255, 0, 0}, true},
		{7, RGB{255, 255, 255}, true},
		{8, RGB{128, 128, 128}, true},
		{11, RGB{255, 170, 170}, true},
		{12, RGB{189, 0, 0}, true},
		{50, RGB{255, 255, 0}, true},
		{250, RGB{51, 51, 51}, true},
		{255, RGB{255, 255, 255}, true},
	}
	for _, tt := range tests {
		got, ok := ACIToRGB(tt.aci)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ACIToRGB(%d) = %v %v, want %v %v", tt.aci, got, ok, tt.want, tt.ok)
		}
	}
}
