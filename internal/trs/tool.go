package trs

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/CZERTAINLY/gh-trs/internal/model"
)

// DefaultToolClass is the class of every tool gh-trs publishes.
func DefaultToolClass() ToolClass {
	return ToolClass{
		ID:          ptr("workflow"),
		Name:        ptr("Workflow"),
		Description: ptr("A computational workflow"),
	}
}

// ToolVersion builds the tool version described by cfg. Attributes which are
// not known at generation time (images, production flag, verification, ...)
// are left empty.
func (g Generator) ToolVersion(cfg *model.Config, owner, repo string) (ToolVersion, error) {
	if _, err := cfg.FirstAuthor(); err != nil {
		return ToolVersion{}, err
	}
	descriptor, err := NewDescriptorType(cfg.Workflow.Language.Type)
	if err != nil {
		return ToolVersion{}, err
	}
	base, err := g.BaseURL(owner, repo)
	if err != nil {
		return ToolVersion{}, err
	}
	u, err := parseURL(fmt.Sprintf("%s/tools/%s/versions/%s", base, cfg.ID, cfg.Version))
	if err != nil {
		return ToolVersion{}, fmt.Errorf("%w: tool version: %w", model.ErrInvalidURL, err)
	}

	return ToolVersion{
		Author:         cfg.AuthorAccounts(),
		Name:           ptr(cfg.Workflow.Name),
		URL:            u,
		ID:             cfg.ID,
		DescriptorType: []DescriptorType{descriptor},
	}, nil
}

// Tool builds the tool described by cfg with the current version. Versions
// of prior other than the current one are kept in their original order.
func (g Generator) Tool(prior *Tool, cfg *model.Config, owner, repo string) (Tool, error) {
	version, err := g.ToolVersion(cfg, owner, repo)
	if err != nil {
		return Tool{}, err
	}
	author, err := cfg.FirstAuthor()
	if err != nil {
		return Tool{}, err
	}
	base, err := g.BaseURL(owner, repo)
	if err != nil {
		return Tool{}, err
	}
	u, err := parseURL(fmt.Sprintf("%s/tools/%s", base, cfg.ID))
	if err != nil {
		return Tool{}, fmt.Errorf("%w: tool: %w", model.ErrInvalidURL, err)
	}

	tool := Tool{
		URL:          u,
		ID:           cfg.ID,
		Organization: author.GitHubAccount,
		Name:         ptr(cfg.Workflow.Name),
		ToolClass:    DefaultToolClass(),
		Versions:     []ToolVersion{version},
	}
	if cfg.Workflow.Readme.URL != nil {
		tool.Description = ptr(cfg.Workflow.Readme.String())
	}

	if prior != nil {
		if prior.ID != cfg.ID {
			return Tool{}, fmt.Errorf("prior tool %s does not match config id %s", prior.ID, cfg.ID)
		}
		tool.Versions = mergeVersions(prior.Versions, version)
	}
	return tool, nil
}

func mergeVersions(prior []ToolVersion, version ToolVersion) []ToolVersion {
	ret := make([]ToolVersion, 0, len(prior)+1)
	replaced := false
	for _, v := range prior {
		if v.URL == version.URL {
			ret = append(ret, version)
			replaced = true
			continue
		}
		ret = append(ret, v)
	}
	if !replaced {
		ret = append(ret, version)
	}
	return ret
}

// MergeTools replaces the tool with the same id in prior or appends it.
func MergeTools(prior []Tool, tool Tool) []Tool {
	ret := make([]Tool, 0, len(prior)+1)
	replaced := false
	for _, t := range prior {
		if t.ID == tool.ID {
			ret = append(ret, tool)
			replaced = true
			continue
		}
		ret = append(ret, t)
	}
	if !replaced {
		ret = append(ret, tool)
	}
	return ret
}

// FindTool returns the tool with the same id as cfg or nil.
func FindTool(tools []Tool, cfg *model.Config) *Tool {
	for idx := range tools {
		if tools[idx].ID == cfg.ID {
			return &tools[idx]
		}
	}
	return nil
}

// DecodeTools reads a previously published tool list.
func DecodeTools(r io.Reader) ([]Tool, error) {
	var tools []Tool
	if err := json.NewDecoder(r).Decode(&tools); err != nil {
		return nil, fmt.Errorf("decoding tools: %w", err)
	}
	return tools, nil
}
