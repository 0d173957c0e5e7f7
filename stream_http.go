package mtext

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPParseRequest configures HTTPParse.
type HTTPParseRequest struct {
	URL      string
	Client   *http.Client
	Sink     Sink
	CodePage string
	Options  []Option
}

// HTTPParse fetches MText over HTTP(S) and parses it into Sink.
func HTTPParse(ctx context.Context, req HTTPParseRequest) error {
	if req.URL == "" {
		return fmt.Errorf("http parse: URL is required")
	}
	if req.Sink == nil {
		return fmt.Errorf("http parse: sink is nil")
	}
	body, err := OpenURL(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("http parse: %w", err)
	}
	defer body.Close()
	return Parse(ParseRequest{
		Reader:   body,
		Sink:     req.Sink,
		CodePage: req.CodePage,
		Options:  req.Options,
	})
}

// OpenURL issues a GET for rawURL and returns the body of a 2xx response.
// A nil client uses http.DefaultClient. The caller closes the body.
func OpenURL(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("http %s: status %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}
