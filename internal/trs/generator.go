package trs

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// Product is the tag the generator embeds into every service-info.
	Product = "gh-trs"
	// APIVersion is the version of the TRS API documents conform to.
	APIVersion = "2.0.1"

	DefaultHostingDomain = "github.com"
	DefaultPagesDomain   = "github.io"

	// versionLayout is YYYYMMDDHHMMSS
	versionLayout = "20060102150405"
)

// ErrInvalidName is returned for owner or repository names which can't be a part of url or path.
var ErrInvalidName = errors.New("invalid name")

// Generator builds TRS documents from a workflow config. The zero value uses
// github.com / github.io and the wall clock. Generator holds no state, so
// a single value can be used from many goroutines.
type Generator struct {
	// HostingDomain is the code hosting site organization urls point to.
	HostingDomain string
	// PagesDomain is the static pages site the registry is published at.
	PagesDomain string
	// Now returns the current instant, time.Now if nil.
	Now func() time.Time
}

func (g Generator) now() time.Time {
	if g.Now == nil {
		return time.Now().UTC()
	}
	return g.Now().UTC()
}

func (g Generator) hostingDomain() string {
	if g.HostingDomain == "" {
		return DefaultHostingDomain
	}
	return g.HostingDomain
}

func (g Generator) pagesDomain() string {
	if g.PagesDomain == "" {
		return DefaultPagesDomain
	}
	return g.PagesDomain
}

// BaseURL returns the url the static API of owner/repo is served from.
func (g Generator) BaseURL(owner, repo string) (string, error) {
	if err := checkNames(owner, repo); err != nil {
		return "", err
	}
	return parseURL(fmt.Sprintf("https://%s.%s/%s", owner, g.pagesDomain(), repo))
}

func checkNames(owner, repo string) error {
	for _, n := range []struct{ kind, value string }{
		{"owner", owner},
		{"repo", repo},
	} {
		if n.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidName, n.kind)
		}
		if strings.ContainsAny(n.value, `/\?#:@ `) || n.value == "." || n.value == ".." {
			return fmt.Errorf("%w: %s %q", ErrInvalidName, n.kind, n.value)
		}
	}
	return nil
}

// parseURL normalizes raw the way url.URL prints it.
func parseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func ptr[T any](v T) *T {
	return &v
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
