package trs_test

import (
	"testing"
	"time"

	"github.com/CZERTAINLY/gh-trs/internal/model"
	"github.com/google/uuid"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var configID = uuid.MustParse("c0a8d8a6-2f4e-4a53-9b4f-6a7e2b8d9c10")

// newConfig returns a complete workflow config, tests mutate the copy they get
func newConfig() *model.Config {
	lang := model.LanguageWDL
	return &model.Config{
		ID:      configID,
		Version: "1.0.0",
		License: model.DefaultLicense,
		Authors: []model.Author{
			{GitHubAccount: "alice", Name: "Alice Example"},
			{GitHubAccount: "bob"},
		},
		Workflow: model.Workflow{
			Name:     "variant_calling",
			Readme:   model.MustParseURL("https://example.com/variant_calling/README.md"),
			Language: model.Language{Type: &lang},
			Files: []model.File{
				{
					URL:    model.MustParseURL("https://example.com/variant_calling/main.wdl"),
					Target: "main.wdl",
					Type:   model.FilePrimary,
				},
				{
					URL:    model.MustParseURL("https://example.com/variant_calling/tasks/bwa.wdl"),
					Target: "tasks/bwa.wdl",
					Type:   model.FileSecondary,
				},
			},
			Testing: []model.Testing{model.DefaultTesting()},
		},
	}
}

// clock returns a Now function starting at start, each call moves it by step
func clock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		ret := now
		now = now.Add(step)
		return ret
	}
}
