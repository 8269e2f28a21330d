package textwidget

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URI identifies a text model.
type URI struct {
	Scheme string
	Path   string
}

const (
	SchemeFile     = "file"
	SchemeInMemory = "inmemory"
)

// ParseURI turns a filename or URI string into a URI. Bare paths get the
// file scheme.
func ParseURI(s string) (URI, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return URI{}, fmt.Errorf("textwidget: empty uri")
	}

	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return URI{}, fmt.Errorf("textwidget: invalid uri %q: %w", s, err)
		}
		path := u.Host + u.Path
		if u.Scheme == SchemeFile {
			path = u.Path
		}
		return URI{Scheme: u.Scheme, Path: ensureLeadingSlash(path)}, nil
	}

	return URI{Scheme: SchemeFile, Path: ensureLeadingSlash(filepath.ToSlash(s))}, nil
}

// NewUntitledURI returns a unique in-memory URI for a model without a file.
func NewUntitledURI() URI {
	return URI{Scheme: SchemeInMemory, Path: "/model/" + uuid.NewString()}
}

// String renders the URI as scheme://path.
func (u URI) String() string {
	return u.Scheme + "://" + u.Path
}

// Base returns the last path element.
func (u URI) Base() string {
	return filepath.Base(u.Path)
}

// IsZero reports whether the URI is unset.
func (u URI) IsZero() bool {
	return u.Scheme == "" && u.Path == ""
}

func ensureLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
