package model

import (
	"encoding/json"
	"fmt"
	"io"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/encoding/yaml"

	_ "embed"
)

// DefaultLicense is used when config does not specify any.
const DefaultLicense = "CC0-1.0"

//go:embed config.cue
var cueSource []byte

var (
	cueCtx *cue.Context
	root   cue.Value
	schema cue.Value
)

func init() {
	if len(cueSource) == 0 {
		panic("variable cueSource is empty")
	}
	cueCtx = cuecontext.New()
	compiled := cueCtx.CompileBytes(cueSource, cue.Filename("config.cue"))
	if compiled.Err() != nil {
		panic(compiled.Err())
	}

	if err := compiled.Validate(); err != nil {
		panic(err)
	}
	root = compiled

	schema = compiled.LookupPath(cue.ParsePath("#Config"))
	if schema.Err() != nil {
		panic(schema.Err())
	}
	if err := schema.Validate(); err != nil {
		panic(err)
	}
}

// LoadConfig validates YAML from r against CUE schema and decodes to Config.
// Missing file targets are derived from urls and a config without tests
// gets DefaultTesting.
func LoadConfig(r io.Reader) (*Config, error) {
	yamlFile, err := yaml.Extract("config.yaml", r)
	if err != nil {
		return nil, err
	}
	yamlValue := cueCtx.BuildFile(yamlFile)

	unified := schema.Unify(yamlValue)
	if err := unified.Validate(
		cue.All(),          // all constraints
		cue.Concrete(true), // no incomplete values
	); err != nil {
		return nil, err
	}

	// the JSON form carries resolved defaults and the Text(un)marshalers
	// of uuid and enums do the rest
	raw, err := unified.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	var out Config
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := out.resolveTargets(); err != nil {
		return nil, err
	}
	if len(out.Workflow.Testing) == 0 {
		out.Workflow.Testing = []Testing{DefaultTesting()}
	}

	return &out, nil
}

func (c *Config) resolveTargets() error {
	for idx, f := range c.Workflow.Files {
		resolved, err := NewFile(f.URL, f.Target, f.Type)
		if err != nil {
			return fmt.Errorf("workflow.files[%d]: %w", idx, err)
		}
		c.Workflow.Files[idx] = resolved
	}
	for tidx, t := range c.Workflow.Testing {
		for idx, f := range t.Files {
			resolved, err := NewTestFile(f.URL, f.Target, f.Type)
			if err != nil {
				return fmt.Errorf("workflow.testing[%d].files[%d]: %w", tidx, idx, err)
			}
			t.Files[idx] = resolved
		}
	}
	return nil
}
