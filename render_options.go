package mtext

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	softWrap bool
	tabSize  int
	margins  bool
}

const defaultTabSize = 4

// WithSoftWrap breaks words longer than the width instead of letting them
// overflow.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithTabSize sets the number of spaces a tab expands to.
func WithTabSize(n int) RenderOption {
	return func(cfg *renderConfig) {
		if n > 0 {
			cfg.tabSize = n
		}
	}
}

// WithMargins indents paragraphs by their left margin, one column per unit
// of character height.
func WithMargins(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.margins = enabled
	}
}
