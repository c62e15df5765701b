package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/kagi"
)

// MaxDocumentBytes caps the size of a local document submitted for summarization.
const MaxDocumentBytes = 5 * 1024 * 1024

// Document is a local file read for summarization.
type Document struct {
	Path    string
	Content string
}

// IsHTML reports whether the document should be treated as an HTML page.
func (d *Document) IsHTML() bool {
	switch strings.ToLower(filepath.Ext(d.Path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// ReadDocument reads the file at path.
// Missing, oversized or empty files yield EINVALID.
func ReadDocument(path string) (*Document, error) {
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, kagi.Errorf(kagi.EINVALID, "File not found: %s", path)
	} else if err != nil {
		return nil, kagi.Errorf(kagi.EINVALID, "Unable to read file: %v", err)
	}
	if info.IsDir() {
		return nil, kagi.Errorf(kagi.EINVALID, "Not a file: %s", path)
	}
	if info.Size() > MaxDocumentBytes {
		return nil, kagi.Errorf(kagi.EINVALID, "File too large: %s (%d bytes, limit %d)", path, info.Size(), MaxDocumentBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kagi.Errorf(kagi.EINVALID, "Unable to read file: %v", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, kagi.Errorf(kagi.EINVALID, "File is empty: %s", path)
	}

	return &Document{Path: path, Content: string(data)}, nil
}
