package model_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CZERTAINLY/gh-trs/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const validConfig = `
id: 8e7d5b0a-7a8b-4c35-9c2b-3f3d4a6f1b21
version: 1.0.0
license: Apache-2.0
authors:
  - github_account: alice
    name: Alice Example
  - github_account: bob
workflow:
  name: trimming_and_qc
  readme: https://example.com/trimming/README.md
  language:
    type: CWL
    version: v1.2
  files:
    - url: https://example.com/trimming/trimming_and_qc.cwl
      type: primary
    - url: https://example.com/trimming/tools/fastqc.cwl
      target: tools/fastqc.cwl
      type: secondary
  testing:
    - id: test_1
      files:
        - url: https://example.com/trimming/wf_params.json
          type: wf_params
        - url: https://example.com/trimming/ERR034597_1.small.fq.gz
          type: other
`

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := model.LoadConfig(strings.NewReader(validConfig))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, uuid.MustParse("8e7d5b0a-7a8b-4c35-9c2b-3f3d4a6f1b21"), cfg.ID)
	require.Equal(t, "1.0.0", cfg.Version)
	require.Equal(t, "Apache-2.0", cfg.License)
	require.Equal(t, []string{"alice", "bob"}, cfg.AuthorAccounts())
	require.Equal(t, "Alice Example", cfg.Authors[0].Name)

	wf := cfg.Workflow
	require.Equal(t, "trimming_and_qc", wf.Name)
	require.Equal(t, "https://example.com/trimming/README.md", wf.Readme.String())
	lang, err := wf.Language.RequireType()
	require.NoError(t, err)
	require.Equal(t, model.LanguageCWL, lang)
	require.NotNil(t, wf.Language.Version)
	require.Equal(t, "v1.2", *wf.Language.Version)

	require.Len(t, wf.Files, 2)
	require.Equal(t, "trimming_and_qc.cwl", wf.Files[0].Target)
	require.Equal(t, model.FilePrimary, wf.Files[0].Type)
	require.Equal(t, "tools/fastqc.cwl", wf.Files[1].Target)
	require.Equal(t, model.FileSecondary, wf.Files[1].Type)

	require.Len(t, wf.Testing, 1)
	require.Equal(t, "test_1", wf.Testing[0].ID)
	require.Len(t, wf.Testing[0].Files, 2)
	require.Equal(t, "wf_params.json", wf.Testing[0].Files[0].Target)
	require.Equal(t, model.TestFileWfParams, wf.Testing[0].Files[0].Type)
	require.Equal(t, "ERR034597_1.small.fq.gz", wf.Testing[0].Files[1].Target)
	require.Equal(t, model.TestFileOther, wf.Testing[0].Files[1].Type)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	const yml = `
id: 8e7d5b0a-7a8b-4c35-9c2b-3f3d4a6f1b21
version: "2.0"
authors:
  - github_account: alice
workflow:
  name: wf
  readme: https://example.com/README.md
  files:
    - url: https://example.com/wf.wdl
      type: primary
`
	cfg, err := model.LoadConfig(strings.NewReader(yml))
	require.NoError(t, err)
	require.Equal(t, model.DefaultLicense, cfg.License)
	require.Nil(t, cfg.Workflow.Language.Type)
	_, err = cfg.Workflow.Language.RequireType()
	require.ErrorIs(t, err, model.ErrMissingLanguageType)
	require.Equal(t, []model.Testing{model.DefaultTesting()}, cfg.Workflow.Testing)
}

func TestLoadConfig_Fail(t *testing.T) {
	t.Parallel()

	var testCases = []struct {
		scenario string
		given    string
		contains string
	}{
		{
			scenario: "no authors",
			given: `
id: 8e7d5b0a-7a8b-4c35-9c2b-3f3d4a6f1b21
version: "1"
authors: []
workflow:
  name: wf
  readme: https://example.com/README.md
  files:
    - url: https://example.com/wf.wdl
      type: primary
`,
			contains: "authors",
		},
		{
			scenario: "bad language",
			given: `
id: 8e7d5b0a-7a8b-4c35-9c2b-3f3d4a6f1b21
version: "1"
authors:
  - github_account: alice
workflow:
  name: wf
  readme: https://example.com/README.md
  language:
    type: PYTHON
  files:
    - url: https://example.com/wf.wdl
      type: primary
`,
			contains: "type",
		},
		{
			scenario: "unknown field",
			given: `
id: 8e7d5b0a-7a8b-4c35-9c2b-3f3d4a6f1b21
version: "1"
authors:
  - github_account: alice
workflow:
  name: wf
  readme: https://example.com/README.md
  colour: blue
  files:
    - url: https://example.com/wf.wdl
      type: primary
`,
			contains: "colour",
		},
		{
			scenario: "bad id",
			given: `
id: not-a-uuid
version: "1"
authors:
  - github_account: alice
workflow:
  name: wf
  readme: https://example.com/README.md
  files:
    - url: https://example.com/wf.wdl
      type: primary
`,
			contains: "id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.scenario, func(t *testing.T) {
			t.Parallel()
			_, err := model.LoadConfig(strings.NewReader(tc.given))
			require.Error(t, err)
			require.ErrorContains(t, err, tc.contains)
			require.NotEmpty(t, model.CueErrDetails(err))
		})
	}
}

func TestLoadConfig_InvalidTarget(t *testing.T) {
	t.Parallel()

	const yml = `
id: 8e7d5b0a-7a8b-4c35-9c2b-3f3d4a6f1b21
version: "1"
authors:
  - github_account: alice
workflow:
  name: wf
  readme: https://example.com/README.md
  files:
    - url: https://example.com/dir/
      type: primary
`
	_, err := model.LoadConfig(strings.NewReader(yml))
	require.Error(t, err)
	require.ErrorIs(t, err, model.ErrInvalidURL)
	require.ErrorContains(t, err, "workflow.files[0]")
	require.Empty(t, model.CueErrDetails(err))
}

func TestCueErrDetails(t *testing.T) {
	t.Parallel()

	const yml = `
id: 8e7d5b0a-7a8b-4c35-9c2b-3f3d4a6f1b21
version: "1"
authors:
  - github_account: alice
workflow:
  name: wf
  readme: https://example.com/README.md
  colour: blue
  files:
    - url: https://example.com/wf.wdl
      type: primary
`
	_, err := model.LoadConfig(strings.NewReader(yml))
	require.Error(t, err)

	details := model.CueErrDetails(err)
	require.NotEmpty(t, details)
	var codes []string
	for _, d := range details {
		codes = append(codes, d.Code)
		require.Equal(t, "detail", d.Attr("detail").Key)
	}
	require.Contains(t, codes, "unknown_field")
}

func TestCueErrDetails_ListEnums(t *testing.T) {
	t.Parallel()

	const yml = `
id: 8e7d5b0a-7a8b-4c35-9c2b-3f3d4a6f1b21
version: "1"
authors:
  - github_account: alice
workflow:
  name: wf
  readme: https://example.com/README.md
  files:
    - url: https://example.com/wf.wdl
      type: primary
    - url: https://example.com/lib.wdl
      type: tertiary
  testing:
    - id: test_1
      files:
        - url: https://example.com/params.json
          type: wf_params
        - url: https://example.com/data.fq
          type: input
`
	_, err := model.LoadConfig(strings.NewReader(yml))
	require.Error(t, err)

	messages := make(map[string][]string)
	for _, d := range model.CueErrDetails(err) {
		messages[d.Path] = append(messages[d.Path], d.Message)
	}
	require.Contains(t, messages, "workflow.files.1.type")
	require.Contains(t, strings.Join(messages["workflow.files.1.type"], "\n"),
		"possible values (primary,secondary)")
	require.Contains(t, messages, "workflow.testing.0.files.1.type")
	require.Contains(t, strings.Join(messages["workflow.testing.0.files.1.type"], "\n"),
		"possible values (wf_params,wf_engine_params,other)")
}

func TestLoadConfig_DollarInURL(t *testing.T) {
	t.Setenv("ref", "expanded")

	const yml = `
id: 8e7d5b0a-7a8b-4c35-9c2b-3f3d4a6f1b21
version: "1"
authors:
  - github_account: alice
workflow:
  name: wf
  readme: https://example.com/raw/$ref/README.md
  files:
    - url: https://example.com/raw/$ref/main.cwl
      type: primary
    - url: https://example.com/raw/$x.cwl
      type: secondary
  testing:
    - id: test_1
      files:
        - url: https://example.com/raw/${ref}/params.json
          type: wf_params
`
	cfg, err := model.LoadConfig(strings.NewReader(yml))
	require.NoError(t, err)

	require.Equal(t, "https://example.com/raw/$ref/README.md", cfg.Workflow.Readme.String())
	require.Equal(t, "https://example.com/raw/$ref/main.cwl", cfg.Workflow.Files[0].URL.String())
	require.Equal(t, "main.cwl", cfg.Workflow.Files[0].Target)
	require.Equal(t, "https://example.com/raw/$x.cwl", cfg.Workflow.Files[1].URL.String())
	require.Equal(t, "$x.cwl", cfg.Workflow.Files[1].Target)
	require.Equal(t, "https://example.com/raw/$%7Bref%7D/params.json", cfg.Workflow.Testing[0].Files[0].URL.String())
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("0b9f0f38-4f6e-4f7b-9d0e-0d6c5f3b7a11")
	tmpl := model.Template(id)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	require.NoError(t, enc.Encode(tmpl))
	require.NoError(t, enc.Close())
	t.Logf("template:\n%s", buf.String())

	cfg, err := model.LoadConfig(&buf)
	require.NoError(t, err)
	require.Equal(t, tmpl, *cfg)
}

func TestConfig_FirstAuthor(t *testing.T) {
	t.Parallel()

	var cfg model.Config
	_, err := cfg.FirstAuthor()
	require.ErrorIs(t, err, model.ErrMissingAuthor)
	require.Empty(t, cfg.AuthorAccounts())

	cfg.Authors = []model.Author{{GitHubAccount: "alice"}, {GitHubAccount: "bob"}}
	first, err := cfg.FirstAuthor()
	require.NoError(t, err)
	require.Equal(t, "alice", first.GitHubAccount)
}
