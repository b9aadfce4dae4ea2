package model

import (
	"github.com/google/uuid"
)

// Config describes one workflow project.
type Config struct {
	ID       uuid.UUID `json:"id" yaml:"id"`
	Version  string    `json:"version" yaml:"version"`
	License  string    `json:"license" yaml:"license"`
	Authors  []Author  `json:"authors" yaml:"authors"`
	Workflow Workflow  `json:"workflow" yaml:"workflow"`
}

type Author struct {
	GitHubAccount string `json:"github_account" yaml:"github_account"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Affiliation   string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	ORCID         string `json:"orcid,omitempty" yaml:"orcid,omitempty"`
}

type Workflow struct {
	Name     string    `json:"name" yaml:"name"`
	Readme   URL       `json:"readme" yaml:"readme"`
	Language Language  `json:"language" yaml:"language"`
	Files    []File    `json:"files" yaml:"files"`
	Testing  []Testing `json:"testing" yaml:"testing"`
}

type Language struct {
	Type    *LanguageType `json:"type,omitempty" yaml:"type,omitempty"`
	Version *string       `json:"version,omitempty" yaml:"version,omitempty"`
}

type LanguageType int

const (
	LanguageCWL LanguageType = iota + 1
	LanguageWDL
	LanguageNFL
	LanguageSMK
)

// LanguageTypes lists every supported workflow language.
var LanguageTypes = []LanguageType{LanguageCWL, LanguageWDL, LanguageNFL, LanguageSMK}

var languageTypes = NewEnumTable("language type", map[LanguageType]string{
	LanguageCWL: "CWL",
	LanguageWDL: "WDL",
	LanguageNFL: "NFL",
	LanguageSMK: "SMK",
})

func (t LanguageType) String() string { return languageTypes.String(t) }

func (t LanguageType) MarshalText() ([]byte, error) { return languageTypes.Marshal(t) }

func (t *LanguageType) UnmarshalText(text []byte) (err error) {
	*t, err = languageTypes.Unmarshal(text)
	return
}

type File struct {
	URL    URL      `json:"url" yaml:"url"`
	Target string   `json:"target,omitempty" yaml:"target,omitempty"`
	Type   FileType `json:"type" yaml:"type"`
}

// FileType is a role of a workflow file.
type FileType int

const (
	FilePrimary FileType = iota + 1
	FileSecondary
)

var fileTypes = NewEnumTable("file type", map[FileType]string{
	FilePrimary:   "primary",
	FileSecondary: "secondary",
})

func (t FileType) String() string { return fileTypes.String(t) }

func (t FileType) MarshalText() ([]byte, error) { return fileTypes.Marshal(t) }

func (t *FileType) UnmarshalText(text []byte) (err error) {
	*t, err = fileTypes.Unmarshal(text)
	return
}

// Testing is a named test scenario.
type Testing struct {
	ID    string     `json:"id" yaml:"id"`
	Files []TestFile `json:"files" yaml:"files"`
}

type TestFile struct {
	URL    URL          `json:"url" yaml:"url"`
	Target string       `json:"target,omitempty" yaml:"target,omitempty"`
	Type   TestFileType `json:"type" yaml:"type"`
}

// TestFileType is a role of a file used by a test.
type TestFileType int

const (
	TestFileWfParams TestFileType = iota + 1
	TestFileWfEngineParams
	TestFileOther
)

var testFileTypes = NewEnumTable("test file type", map[TestFileType]string{
	TestFileWfParams:       "wf_params",
	TestFileWfEngineParams: "wf_engine_params",
	TestFileOther:          "other",
})

func (t TestFileType) String() string { return testFileTypes.String(t) }

func (t TestFileType) MarshalText() ([]byte, error) { return testFileTypes.Marshal(t) }

func (t *TestFileType) UnmarshalText(text []byte) (err error) {
	*t, err = testFileTypes.Unmarshal(text)
	return
}

// FirstAuthor returns the author the publishing organization is derived from.
func (c *Config) FirstAuthor() (Author, error) {
	if len(c.Authors) == 0 {
		return Author{}, ErrMissingAuthor
	}
	return c.Authors[0], nil
}

// AuthorAccounts returns github accounts of all authors in the config order.
func (c *Config) AuthorAccounts() []string {
	ret := make([]string, 0, len(c.Authors))
	for _, a := range c.Authors {
		ret = append(ret, a.GitHubAccount)
	}
	return ret
}

// RequireType returns the language type or ErrMissingLanguageType.
func (l Language) RequireType() (LanguageType, error) {
	if l.Type == nil {
		return 0, ErrMissingLanguageType
	}
	return *l.Type, nil
}

// DefaultTesting is the test scaffold used when a config defines no tests.
func DefaultTesting() Testing {
	mustTestFile := func(raw string, typ TestFileType) TestFile {
		f, err := NewTestFile(MustParseURL(raw), "", typ)
		if err != nil {
			panic(err)
		}
		return f
	}
	return Testing{
		ID: "test_1",
		Files: []TestFile{
			mustTestFile("https://example.com/path/to/wf_params.json", TestFileWfParams),
			mustTestFile("https://example.com/path/to/wf_engine_params.json", TestFileWfEngineParams),
			mustTestFile("https://example.com/path/to/data.fq", TestFileOther),
		},
	}
}

// Template returns a config scaffold users are supposed to edit.
func Template(id uuid.UUID) Config {
	lang := LanguageCWL
	langVersion := "v1.2"
	primary, err := NewFile(MustParseURL("https://example.com/path/to/workflow.cwl"), "", FilePrimary)
	if err != nil {
		panic(err)
	}
	return Config{
		ID:      id,
		Version: "1.0.0",
		License: DefaultLicense,
		Authors: []Author{
			{
				GitHubAccount: "octocat",
				Name:          "The Octocat",
				Affiliation:   "GitHub",
			},
		},
		Workflow: Workflow{
			Name:   "example-workflow",
			Readme: MustParseURL("https://example.com/path/to/README.md"),
			Language: Language{
				Type:    &lang,
				Version: &langVersion,
			},
			Files:   []File{primary},
			Testing: []Testing{DefaultTesting()},
		},
	}
}
