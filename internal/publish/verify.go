package publish

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/CZERTAINLY/gh-trs/internal/trs"
)

// KindOf returns the kind of document stored at the slash separated name
// inside a published tree.
func KindOf(name string) (trs.Kind, bool) {
	s := strings.Split(name, "/")
	if s[len(s)-1] != indexFile {
		return "", false
	}
	s = s[:len(s)-1]
	switch {
	case len(s) == 1 && s[0] == "service-info":
		return trs.KindServiceInfo, true
	case len(s) == 0 || s[0] != "tools":
		return "", false
	case len(s) == 1:
		return trs.KindTools, true
	case len(s) == 2:
		return trs.KindTool, true
	case s[2] != "versions":
		return "", false
	case len(s) == 3:
		return trs.KindToolVersions, true
	case len(s) == 4:
		return trs.KindToolVersion, true
	case len(s) == 6:
		switch s[5] {
		case "descriptor":
			return trs.KindFileWrapper, true
		case "files":
			return trs.KindToolFiles, true
		case "tests":
			return trs.KindFileWrappers, true
		}
	}
	return "", false
}

// Verify validates every known document of a published tree. Other files are
// skipped. It returns the verified paths and all failures joined.
func (p *Publisher) Verify(ctx context.Context) ([]string, error) {
	var paths []string
	var errs []error
	err := fs.WalkDir(p.root.FS(), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		kind, ok := KindOf(name)
		if !ok {
			return nil
		}
		b, err := fs.ReadFile(p.root.FS(), name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		if err := p.validator.ValidateBytes(ctx, kind, b); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		paths = append(paths, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		errs = append(errs, errors.New("no TRS document found"))
	}
	return paths, errors.Join(errs...)
}
