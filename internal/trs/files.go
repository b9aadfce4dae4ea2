package trs

import (
	"errors"

	"github.com/CZERTAINLY/gh-trs/internal/model"
)

// ErrMissingPrimary is returned when a workflow has no primary file.
var ErrMissingPrimary = errors.New("no primary file")

var workflowFileTypes = map[model.FileType]FileType{
	model.FilePrimary:   FileTypePrimaryDescriptor,
	model.FileSecondary: FileTypeSecondaryDescriptor,
}

// ToolFiles lists workflow files followed by test files of all tests.
func ToolFiles(cfg *model.Config) []ToolFile {
	// not nil, the list is published as is and schema does not allow null
	ret := []ToolFile{}
	for _, f := range cfg.Workflow.Files {
		typ, ok := workflowFileTypes[f.Type]
		if !ok {
			typ = FileTypeOther
		}
		ret = append(ret, ToolFile{
			Path:     ptr(f.Target),
			FileType: ptr(typ),
		})
	}
	for _, t := range cfg.Workflow.Testing {
		for _, f := range t.Files {
			ret = append(ret, ToolFile{
				Path:     ptr(f.Target),
				FileType: ptr(FileTypeTestFile),
			})
		}
	}
	return ret
}

// DescriptorWrapper points to the first primary workflow file.
func DescriptorWrapper(cfg *model.Config) (FileWrapper, error) {
	for _, f := range cfg.Workflow.Files {
		if f.Type == model.FilePrimary {
			return FileWrapper{URL: ptr(f.URL.String())}, nil
		}
	}
	return FileWrapper{}, ErrMissingPrimary
}

// TestWrappers points to every test file of every test.
func TestWrappers(cfg *model.Config) []FileWrapper {
	ret := []FileWrapper{}
	for _, t := range cfg.Workflow.Testing {
		for _, f := range t.Files {
			ret = append(ret, FileWrapper{URL: ptr(f.URL.String())})
		}
	}
	return ret
}
