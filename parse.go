package mtext

import (
	"fmt"
	"io"
)

// ParseRequest configures Parse.
type ParseRequest struct {
	Reader io.Reader
	Sink   Sink
	// CodePage names the DXF code page of the input; empty means UTF-8.
	CodePage string
	Options  []Option
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader        io.Reader
	Writer        io.Writer
	Width         int
	Theme         Theme
	CodePage      string
	Options       []Option
	RenderOptions []RenderOption
}

// Parse reads MText from Reader, tokenizes it and writes every token to
// Sink. The sink is flushed once the input is exhausted.
func Parse(req ParseRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("parse: reader is nil")
	}
	if req.Sink == nil {
		return fmt.Errorf("parse: sink is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("parse: read: %w", err)
	}
	text, err := DecodeInput(src, req.CodePage)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	for tok := range NewTokenizer(text, req.Options...).All() {
		if err := req.Sink.WriteToken(tok); err != nil {
			return fmt.Errorf("parse: %w", err)
		}
	}
	return req.Sink.Flush()
}

// Render previews MText from Reader on Writer as ANSI text.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	return Parse(ParseRequest{
		Reader:   req.Reader,
		Sink:     NewTextRenderer(req.Writer, req.Width, req.Theme, req.RenderOptions...),
		CodePage: req.CodePage,
		Options:  req.Options,
	})
}
