// Package fs provides file-based access to the session token and to local
// documents submitted for summarization.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/kagi"
)

// TokenFileName is the name of the token file in the home directory.
const TokenFileName = ".kagi_session_token"

// DefaultTokenPath returns ~/.kagi_session_token, or the bare file name if
// the home directory cannot be determined.
func DefaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return TokenFileName
	}
	return filepath.Join(home, TokenFileName)
}

// Ensure TokenFile implements kagi.TokenSource at compile time.
var _ kagi.TokenSource = (*TokenFile)(nil)

// TokenFile reads the session token from a file. An explicit token, when
// set, takes precedence over the file.
type TokenFile struct {
	path     string
	explicit string
}

// NewTokenFile creates a TokenFile reading from path. explicit is the
// token given on the command line or in the environment, if any.
func NewTokenFile(path, explicit string) *TokenFile {
	return &TokenFile{path: path, explicit: explicit}
}

// Token returns the explicit token if set, otherwise the trimmed file
// content. A missing or empty file yields EUNAUTHORIZED.
func (f *TokenFile) Token() (string, error) {
	if token := strings.TrimSpace(f.explicit); token != "" {
		return token, nil
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", kagi.Errorf(kagi.EUNAUTHORIZED, kagi.TokenRequiredMessage)
	} else if err != nil {
		return "", kagi.Errorf(kagi.EINVALID, "Unable to read token file: %v", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", kagi.Errorf(kagi.EUNAUTHORIZED, kagi.TokenRequiredMessage)
	}
	return token, nil
}
