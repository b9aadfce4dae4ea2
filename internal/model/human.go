// human readable and writable stdlib types
// which can be used inside config file
package model

import (
	"errors"
	"net/url"
)

// URL is a url.URL marshalled as its string form.
type URL struct {
	*url.URL
}

// ParseURL parses raw into URL.
func ParseURL(raw string) (URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return URL{}, err
	}
	return URL{URL: parsed}, nil
}

// MustParseURL is like ParseURL but panics on error.
// It is meant for package level constants.
func MustParseURL(raw string) URL {
	u, err := ParseURL(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func (u URL) String() string {
	if u.URL == nil {
		return ""
	}
	return u.URL.String()
}

func (u *URL) UnmarshalText(text []byte) error {
	if u == nil {
		return errors.New("can't unmarshal to nil")
	}
	// taken verbatim, $ is a legal url character
	parsed, err := url.Parse(string(text))
	if err != nil {
		return err
	}
	u.URL = parsed
	return nil
}

func (u URL) MarshalText() ([]byte, error) {
	if u.URL == nil {
		return []byte{}, nil
	}
	return []byte(u.String()), nil
}
