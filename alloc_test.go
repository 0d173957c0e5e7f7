package mtext

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestTokenizeAllocations(t *testing.T) {
	src := `\pt1,2,3;` + strings.Repeat("alpha beta gamma ", 100)
	allocs := testing.AllocsPerRun(50, func() {
		for range NewTokenizer(src).All() {
		}
	})
	// one string per word plus the tokenizer itself
	if allocs > 400 {
		t.Fatalf("too many allocations per tokenize: got %.2f", allocs)
	}
}

func TestRenderSampleAllocations(t *testing.T) {
	src := mustReadSample(t, "testdata/sample.mtext")
	allocs := testing.AllocsPerRun(20, func() {
		_ = Render(RenderRequest{
			Reader: bytes.NewReader(src),
			Writer: io.Discard,
			Width:  80,
			Theme:  DefaultTheme(),
		})
	})
	if allocs > 6000 {
		t.Fatalf("too many allocations per Render: got %.2f", allocs)
	}
}
