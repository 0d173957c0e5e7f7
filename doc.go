// Package mtext decodes the inline formatting markup of CAD multiline text
// (MText) into a flat stream of tokens.
//
// Every token carries a snapshot of the formatting state at its position,
// so text layout engines can place words, fractions and paragraphs without
// parsing the markup again. Shaping, font metrics and line layout are left
// to the consumer.
//
// Core properties:
//   - Pull-based: tokens are produced one at a time on demand
//   - Permissive: malformed commands degrade to literal text, parsing never fails
//   - Immutable snapshots: a token's Context is never changed afterwards
//
// Example:
//
//	for tok := range mtext.NewTokenizer(`{\H2;\LTitle}\Pbody \S1/2;`).All() {
//		fmt.Println(tok.Kind, tok.Text, tok.Context.CapHeight)
//	}
//
// Parse and Render read from an io.Reader, decode legacy DXF code pages and
// feed a Sink such as DumpWriter or the ANSI preview TextRenderer.
package mtext
