package model

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveTarget returns the local path a file downloaded from u is stored at.
// A non-empty explicit target is returned verbatim. Otherwise the last path
// segment of u is used as is, percent-encoded characters included.
func ResolveTarget(u *url.URL, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if u == nil {
		return "", fmt.Errorf("%w: <nil>", ErrInvalidURL)
	}
	// opaque urls like mailto:x have no path segments at all
	if u.Opaque != "" {
		return "", fmt.Errorf("%w: %s: no path segments", ErrInvalidURL, u)
	}
	path := u.EscapedPath()
	if path == "" {
		return "", fmt.Errorf("%w: %s: no path segments", ErrInvalidURL, u)
	}
	segment := path[strings.LastIndexByte(path, '/')+1:]
	if segment == "" {
		return "", fmt.Errorf("%w: %s: empty last path segment", ErrInvalidURL, u)
	}
	return segment, nil
}

// NewFile creates a workflow file, deriving the target from the url if explicit is empty.
func NewFile(u URL, explicit string, typ FileType) (File, error) {
	target, err := ResolveTarget(u.URL, explicit)
	if err != nil {
		return File{}, err
	}
	return File{
		URL:    u,
		Target: target,
		Type:   typ,
	}, nil
}

// NewTestFile creates a test file, deriving the target from the url if explicit is empty.
func NewTestFile(u URL, explicit string, typ TestFileType) (TestFile, error) {
	target, err := ResolveTarget(u.URL, explicit)
	if err != nil {
		return TestFile{}, err
	}
	return TestFile{
		URL:    u,
		Target: target,
		Type:   typ,
	}, nil
}
