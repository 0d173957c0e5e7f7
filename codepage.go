package mtext

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// ErrUnknownCodePage reports a code page name DecodeInput does not support.
var ErrUnknownCodePage = errors.New("unknown code page")

// replacementGlyph stands in for characters that cannot be decoded.
const replacementGlyph = '▯'

// codePages maps DXF $DWGCODEPAGE names to encodings.
var codePages = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_932":  japanese.ShiftJIS,
	"ANSI_936":  simplifiedchinese.GBK,
	"ANSI_949":  korean.EUCKR,
	"ANSI_950":  traditionalchinese.Big5,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"DOS437":    charmap.CodePage437,
	"DOS850":    charmap.CodePage850,
	"DOS866":    charmap.CodePage866,
	"ISO8859-1": charmap.ISO8859_1,
}

// mbcsCodePages are tried in order for \M+XXXX characters. The document
// carries no locale hint, so this is best effort.
var mbcsCodePages = []encoding.Encoding{
	japanese.ShiftJIS,
	simplifiedchinese.GBK,
}

// CodePages returns the supported code page names.
func CodePages() []string {
	names := make([]string, 0, len(codePages))
	for name := range codePages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupCodePage(name string) (encoding.Encoding, bool) {
	enc, ok := codePages[strings.ToUpper(strings.TrimSpace(name))]
	return enc, ok
}

// DecodeInput converts raw entity text to a string. An empty codePage or
// "UTF-8" requires valid UTF-8 and drops a leading byte order mark; any
// other name selects a legacy DXF code page. The result is checked with
// the same binary heuristics as ValidateInput.
func DecodeInput(src []byte, codePage string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(codePage)) {
	case "", "UTF-8", "UTF8":
		src = trimBOM(src)
		if err := ValidateInput(src); err != nil {
			return "", err
		}
		return string(src), nil
	}
	enc, ok := lookupCodePage(codePage)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCodePage, codePage)
	}
	out, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", codePage, err)
	}
	if err := ValidateInput(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}

// decodeDoubleByte decodes the two bytes of \M+XXXX. It returns the
// replacement glyph when no code page yields exactly one character.
func decodeDoubleByte(hi, lo byte) rune {
	src := []byte{hi, lo}
	for _, enc := range mbcsCodePages {
		out, err := enc.NewDecoder().Bytes(src)
		if err != nil {
			continue
		}
		r, size := utf8.DecodeRune(out)
		if size == len(out) && r != utf8.RuneError {
			return r
		}
	}
	return replacementGlyph
}
