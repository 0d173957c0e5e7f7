package mtext

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
)

func mustReadSample(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read %s: %v", path, err)
	}
	return data
}

func BenchmarkTokenizeSample(b *testing.B) {
	text := string(mustReadSample(b, "testdata/sample.mtext"))
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		for range NewTokenizer(text, WithPropertyChanges(true)).All() {
		}
	}
}

func BenchmarkTokenizeRepeated(b *testing.B) {
	text := strings.Repeat(`{\H2;\C1;word} \S1/2; plain text\P`, 200)
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		tz := NewTokenizer(text)
		for {
			if _, ok := tz.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkRenderSample(b *testing.B) {
	data := mustReadSample(b, "testdata/sample.mtext")
	for _, width := range []int{50, 60, 80} {
		b.Run(intToWidthLabel(width), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			reader := bytes.NewReader(data)
			for i := 0; i < b.N; i++ {
				reader.Reset(data)
				_ = Render(RenderRequest{
					Reader: reader,
					Writer: io.Discard,
					Width:  width,
					Theme:  DefaultTheme(),
				})
			}
		})
	}
}

func BenchmarkHTTPParse(b *testing.B) {
	data := mustReadSample(b, "testdata/sample.mtext")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	defer server.Close()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sink TokenCollector
		if err := HTTPParse(context.Background(), HTTPParseRequest{
			URL:    server.URL,
			Client: server.Client(),
			Sink:   &sink,
		}); err != nil {
			b.Fatalf("http parse: %v", err)
		}
	}
}

func intToWidthLabel(width int) string {
	return "w" + strconv.Itoa(width)
}
