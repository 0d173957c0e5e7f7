package mtext

// Sink receives tokens from Parse.
type Sink interface {
	WriteToken(Token) error
	Flush() error
}

// TokenCollector is a Sink that keeps every token.
type TokenCollector struct {
	Tokens []Token
}

func (c *TokenCollector) WriteToken(tok Token) error {
	c.Tokens = append(c.Tokens, tok)
	return nil
}

func (c *TokenCollector) Flush() error { return nil }
