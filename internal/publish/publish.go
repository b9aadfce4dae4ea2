// Package publish lays the TRS documents out as a static API tree.
//
//	service-info/index.json
//	tools/index.json
//	tools/{id}/index.json
//	tools/{id}/versions/index.json
//	tools/{id}/versions/{version}/index.json
//	tools/{id}/versions/{version}/{TYPE}/descriptor/index.json
//	tools/{id}/versions/{version}/{TYPE}/files/index.json
//	tools/{id}/versions/{version}/{TYPE}/tests/index.json
//
// A tree published before is read back, so service-info keeps its identity
// and tools keep their older versions.
package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/CZERTAINLY/gh-trs/internal/model"
	"github.com/CZERTAINLY/gh-trs/internal/trs"
)

const (
	ServiceInfoPath = "service-info/index.json"
	ToolsPath       = "tools/index.json"
	indexFile       = "index.json"
)

type Publisher struct {
	root      *os.Root
	gen       trs.Generator
	validator trs.Validator
}

// Result summarizes one Publish call.
type Result struct {
	ServiceInfo trs.ServiceInfo
	Tools       []trs.Tool
	Paths       []string
}

type document struct {
	path string
	kind trs.Kind
	doc  any
}

// New opens dir, which is created if missing, as a root of the published tree.
func New(dir string, gen trs.Generator, validator trs.Validator) (*Publisher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("opening directory %s: %w", dir, err)
	}
	return &Publisher{
		root:      root,
		gen:       gen,
		validator: validator,
	}, nil
}

func (p *Publisher) Close() error {
	return p.root.Close()
}

// Publish generates documents of all configs, validates them and writes them
// down. Nothing is written if any document fails. The organization of a new
// service-info comes from the first config.
func (p *Publisher) Publish(ctx context.Context, owner, repo string, cfgs ...*model.Config) (Result, error) {
	if len(cfgs) == 0 {
		return Result{}, errors.New("no config to publish")
	}

	prior, err := p.readServiceInfo()
	if err != nil {
		return Result{}, err
	}
	tools, err := p.readTools()
	if err != nil {
		return Result{}, err
	}
	slog.DebugContext(ctx, "prior documents", "service-info", prior != nil, "tools", len(tools))

	info, err := p.gen.ServiceInfo(prior, cfgs[0], owner, repo)
	if err != nil {
		return Result{}, fmt.Errorf("generating service-info: %w", err)
	}

	var docs []document
	for _, cfg := range cfgs {
		tool, err := p.gen.Tool(trs.FindTool(tools, cfg), cfg, owner, repo)
		if err != nil {
			return Result{}, fmt.Errorf("generating tool %s: %w", cfg.ID, err)
		}
		tools = trs.MergeTools(tools, tool)
		version, err := p.gen.ToolVersion(cfg, owner, repo)
		if err != nil {
			return Result{}, fmt.Errorf("generating tool version %s: %w", cfg.ID, err)
		}

		toolDocs, err := versionDocuments(cfg, version)
		if err != nil {
			return Result{}, fmt.Errorf("tool %s: %w", cfg.ID, err)
		}
		docs = append(docs, toolDocs...)
	}
	// the tool documents are final only after all configs were merged
	for _, tool := range tools {
		dir := path.Join("tools", tool.ID.String())
		docs = append(docs,
			document{path.Join(dir, indexFile), trs.KindTool, tool},
			document{path.Join(dir, "versions", indexFile), trs.KindToolVersions, tool.Versions},
		)
	}
	docs = append(docs,
		document{ToolsPath, trs.KindTools, tools},
		document{ServiceInfoPath, trs.KindServiceInfo, info},
	)

	for _, d := range docs {
		if err := p.validator.Validate(ctx, d.kind, d.doc); err != nil {
			return Result{}, fmt.Errorf("%s: %w", d.path, err)
		}
	}

	paths := make([]string, 0, len(docs))
	for _, d := range docs {
		slog.DebugContext(ctx, "writing document", "path", d.path, "kind", d.kind)
		if err := p.writeJSON(d.path, d.doc); err != nil {
			return Result{}, err
		}
		paths = append(paths, d.path)
	}
	slog.InfoContext(ctx, "registry published",
		"service-info", info.ID,
		"version", info.Version,
		"tools", len(tools),
		"documents", len(paths),
	)

	return Result{
		ServiceInfo: info,
		Tools:       tools,
		Paths:       paths,
	}, nil
}

func versionDocuments(cfg *model.Config, version trs.ToolVersion) ([]document, error) {
	if err := checkSegment(cfg.Version); err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	descriptor, err := trs.NewDescriptorType(cfg.Workflow.Language.Type)
	if err != nil {
		return nil, err
	}
	wrapper, err := trs.DescriptorWrapper(cfg)
	if err != nil {
		return nil, err
	}

	dir := path.Join("tools", cfg.ID.String(), "versions", cfg.Version)
	typeDir := path.Join(dir, descriptor.WithPlain().String())
	return []document{
		{path.Join(dir, indexFile), trs.KindToolVersion, version},
		{path.Join(typeDir, "descriptor", indexFile), trs.KindFileWrapper, wrapper},
		{path.Join(typeDir, "files", indexFile), trs.KindToolFiles, trs.ToolFiles(cfg)},
		{path.Join(typeDir, "tests", indexFile), trs.KindFileWrappers, trs.TestWrappers(cfg)},
	}, nil
}

func checkSegment(s string) error {
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("%q can't be used as a path segment", s)
	}
	return nil
}

func (p *Publisher) readServiceInfo() (*trs.ServiceInfo, error) {
	f, err := p.root.Open(filepath.FromSlash(ServiceInfoPath))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", ServiceInfoPath, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return trs.DecodeServiceInfo(f)
}

func (p *Publisher) readTools() ([]trs.Tool, error) {
	f, err := p.root.Open(filepath.FromSlash(ToolsPath))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", ToolsPath, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return trs.DecodeTools(f)
}

func (p *Publisher) writeJSON(name string, doc any) error {
	if err := p.mkdirAll(path.Dir(name)); err != nil {
		return err
	}
	f, err := p.root.Create(filepath.FromSlash(name))
	if err != nil {
		return fmt.Errorf("creating file %s: %w", name, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}

func (p *Publisher) mkdirAll(dir string) error {
	var current string
	for _, segment := range strings.Split(dir, "/") {
		current = path.Join(current, segment)
		err := p.root.Mkdir(filepath.FromSlash(current), 0o755)
		if err != nil && !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("creating directory %s: %w", current, err)
		}
	}
	return nil
}
