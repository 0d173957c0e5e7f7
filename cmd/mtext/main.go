package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mtext"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	defaultMaxText   = 60
)

func init() {
	version.SetDefaultModule("pkt.systems/mtext")
}

type options struct {
	format     string
	themeName  string
	width      int
	outPath    string
	codePage   string
	properties bool
	runeNames  bool
	fonts      bool
	keepEOL    bool
	stats      bool
	softWrap   bool
	margins    bool
}

func main() {
	var (
		opts       options
		listThemes bool
		listPages  bool
	)
	flags := pflag.NewFlagSet("mtext", pflag.ExitOnError)
	flags.StringVarP(&opts.format, "format", "f", "dump", "Output format: dump|plain|ansi")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name for --format ansi")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&opts.codePage, "codepage", "", "DXF code page of the input, e.g. ANSI_1252 (default UTF-8)")
	flags.BoolVarP(&opts.properties, "properties", "p", false, "Emit property change tokens")
	flags.BoolVar(&opts.runeNames, "rune-names", false, "Annotate non-ASCII runes with Unicode names (dump)")
	flags.BoolVar(&opts.fonts, "fonts", false, "List the font families used and exit")
	flags.BoolVar(&opts.keepEOL, "keep-eol", false, "Do not convert line endings to paragraph breaks")
	flags.BoolVar(&opts.stats, "stats", false, "Print input and token statistics to stderr")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the width (ansi)")
	flags.BoolVar(&opts.margins, "margins", true, "Indent paragraphs by their left margin (ansi)")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&listPages, "list-codepages", false, "List supported code pages")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mtext [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, MText is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		printLines(os.Stdout, mtext.AvailableThemes())
		return
	}
	if listPages {
		printLines(os.Stdout, mtext.CodePages())
		return
	}

	sources, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(opts.outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	theme, ok := mtext.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", opts.themeName)
		printLines(os.Stderr, mtext.AvailableThemes())
		os.Exit(2)
	}
	if opts.format == "ansi" && opts.themeName == defaultThemeName {
		switch {
		case !isTerminal(writer):
			theme, _ = mtext.ThemeByName("boring")
		case !mtext.DetectTrueColor():
			theme, _ = mtext.ThemeByName("mono")
		}
	}
	if opts.width <= 0 {
		opts.width = terminalWidth(defaultWidth)
	}

	for _, src := range sources {
		if err := run(src, writer, theme, opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", src.name, err)
			os.Exit(1)
		}
	}
}

// run processes one input document.
func run(src inputSource, w io.Writer, theme mtext.Theme, opts options) error {
	r, closer, err := src.open()
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	text, err := mtext.DecodeInput(data, opts.codePage)
	if err != nil {
		return err
	}
	if !opts.keepEOL {
		text = mtext.NormalizeLineEndings(strings.TrimRight(text, "\r\n"))
	}
	if opts.fonts {
		printLines(w, mtext.FontFamilies(text))
		return nil
	}
	counter := &countingSink{}
	var sink mtext.Sink
	switch opts.format {
	case "dump":
		dump := mtext.NewDumpWriter(w)
		dump.MaxText = defaultMaxText
		dump.RuneNames = opts.runeNames
		sink = dump
	case "plain":
		_, err := fmt.Fprintln(w, mtext.PlainText(text, 4))
		return err
	case "ansi":
		sink = mtext.NewTextRenderer(w, opts.width, theme,
			mtext.WithSoftWrap(opts.softWrap),
			mtext.WithMargins(opts.margins))
	default:
		return fmt.Errorf("unknown format %q (want dump|plain|ansi)", opts.format)
	}
	counter.next = sink
	err = mtext.Parse(mtext.ParseRequest{
		Reader:  strings.NewReader(text),
		Sink:    counter,
		Options: []mtext.Option{mtext.WithPropertyChanges(opts.properties)},
	})
	if err != nil {
		return err
	}
	if opts.stats {
		fmt.Fprintf(os.Stderr, "%s: %s, %s tokens, %s words\n", src.name,
			humanize.Bytes(uint64(len(data))),
			humanize.Comma(int64(counter.tokens)),
			humanize.Comma(int64(counter.words)))
	}
	return nil
}

// countingSink counts tokens on their way to next.
type countingSink struct {
	next   mtext.Sink
	tokens int
	words  int
}

func (c *countingSink) WriteToken(tok mtext.Token) error {
	c.tokens++
	if tok.Kind == mtext.TokenWord {
		c.words++
	}
	return c.next.WriteToken(tok)
}

func (c *countingSink) Flush() error { return c.next.Flush() }

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type inputSource struct {
	name string
	open func() (io.Reader, io.Closer, error)
}

func openInputs(args []string) ([]inputSource, error) {
	if len(args) == 0 {
		return []inputSource{{name: "stdin", open: func() (io.Reader, io.Closer, error) {
			return os.Stdin, nil, nil
		}}}, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	body, err := mtext.OpenURL(context.Background(), nil, raw)
	if err != nil {
		return nil, nil, err
	}
	return body, body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
