package mtext

// Option configures a Tokenizer.
type Option func(*config)

type config struct {
	propertyChanges bool
	ctx             *Context
}

// WithPropertyChanges surfaces successful property commands as
// TokenPropertyChange tokens carrying the fields that changed since the
// previously reported context. Off by default; the effects are then only
// visible in the contexts of later tokens.
func WithPropertyChanges(enabled bool) Option {
	return func(cfg *config) {
		cfg.propertyChanges = enabled
	}
}

// WithContext seeds the tokenizer with ctx instead of DefaultContext, for
// text that continues a paragraph started under earlier formatting.
func WithContext(ctx Context) Option {
	return func(cfg *config) {
		c := ctx.Copy()
		cfg.ctx = &c
	}
}
