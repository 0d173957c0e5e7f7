package mtext

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampleDocument(t *testing.T) {
	text := string(mustReadSample(t, "testdata/sample.mtext"))
	text = strings.TrimRight(text, "\n")
	toks := Tokenize(text)

	var stacks []Stack
	counts := map[TokenKind]int{}
	for _, tok := range toks {
		counts[tok.Kind]++
		if tok.Kind == TokenStack {
			stacks = append(stacks, tok.Stack)
		}
	}
	wantStacks := []Stack{{"1", "16", '/'}, {"+0.1", "-0.0", '^'}}
	if diff := cmp.Diff(wantStacks, stacks); diff != "" {
		t.Fatalf("stacks mismatch (-want +got):\n%s", diff)
	}
	if counts[TokenColumn] != 1 || counts[TokenWrapAtDimLine] != 1 || counts[TokenParagraph] != 8 {
		t.Fatalf("unexpected break counts %v", counts)
	}

	words := wordsOf(toks)
	for _, w := range []string{"⌀22", "±5%.", "±0.5°.", "中文", "あいう"} {
		if !slices.Contains(words, w) {
			t.Errorf("expected word %q in %q", w, words)
		}
	}
	for _, tok := range toks {
		if tok.Text == "GENERAL" {
			if tok.Context.Font.Weight != WeightBold || tok.Context.CapHeight.Value != 2.5 {
				t.Fatalf("unexpected heading context %+v", tok.Context)
			}
		}
		if tok.Text == "REVISION" && !(tok.Context.Underline() && tok.Context.Overline()) {
			t.Fatalf("expected REVISION to be under- and overlined")
		}
	}

	if diff := cmp.Diff([]string{"Arial", "MS Gothic", "SimSun"}, FontFamilies(text)); diff != "" {
		t.Fatalf("families mismatch (-want +got):\n%s", diff)
	}
	if !HasInlineFormattingCodes(text) {
		t.Fatalf("expected formatting codes in the sample")
	}
	lines := PlainLines(text, 1)
	if lines[0] != "GENERAL NOTES" || lines[1] != "1. ALL DIMENSIONS ARE IN MILLIMETRES UNLESS NOTED OTHERWISE." {
		t.Fatalf("unexpected plain lines %q", lines[:2])
	}
}
