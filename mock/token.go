package mock

import "github.com/fwojciec/kagi"

var _ kagi.TokenSource = (*TokenSource)(nil)

// TokenSource is a mock implementation of kagi.TokenSource.
type TokenSource struct {
	TokenFn func() (string, error)
}

func (s *TokenSource) Token() (string, error) {
	return s.TokenFn()
}
