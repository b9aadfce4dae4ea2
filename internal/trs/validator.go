package trs

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schemas/trs-2.0.1.schema.json
var schemaFS embed.FS

const (
	schemaPath = "schemas/trs-2.0.1.schema.json"
	schemaURL  = "https://github.com/CZERTAINLY/gh-trs/schemas/trs-2.0.1.schema.json"
)

// ErrInvalidDocument is returned when a document does not conform to the schema.
var ErrInvalidDocument = errors.New("invalid document")

// Kind is a type of a published document.
type Kind string

const (
	KindServiceInfo  Kind = "ServiceInfo"
	KindTool         Kind = "Tool"
	KindTools        Kind = "Tools"
	KindToolVersion  Kind = "ToolVersion"
	KindToolVersions Kind = "ToolVersions"
	KindToolFiles    Kind = "ToolFiles"
	KindFileWrapper  Kind = "FileWrapper"
	KindFileWrappers Kind = "FileWrappers"
)

// Kinds lists all documents the Validator knows.
var Kinds = []Kind{
	KindServiceInfo,
	KindTool,
	KindTools,
	KindToolVersion,
	KindToolVersions,
	KindToolFiles,
	KindFileWrapper,
	KindFileWrappers,
}

// Validator validates TRS documents against the embedded schema
type Validator struct {
	schemas map[Kind]*jsonschema.Schema
}

// NewValidator compiles schemas of given kinds, all of them when none is passed.
func NewValidator(kinds ...Kind) (Validator, error) {
	var zero Validator
	if len(kinds) == 0 {
		kinds = Kinds
	}

	b, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		return zero, fmt.Errorf("reading embedded schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return zero, fmt.Errorf("parsing embedded schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return zero, fmt.Errorf("adding schema: %w", err)
	}

	schemas := make(map[Kind]*jsonschema.Schema, len(kinds))
	for _, kind := range kinds {
		schema, err := compiler.Compile(schemaURL + "#/$defs/" + string(kind))
		if err != nil {
			return zero, fmt.Errorf("compiling schema %s: %w", kind, err)
		}
		schemas[kind] = schema
	}
	return Validator{
		schemas: schemas,
	}, nil
}

// Validate encodes v to JSON and validates it as a document of kind.
func (v Validator) Validate(ctx context.Context, kind Kind, doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s to JSON: %w", kind, err)
	}
	return v.ValidateBytes(ctx, kind, b)
}

func (v Validator) ValidateBytes(_ context.Context, kind Kind, b []byte) error {
	schema, ok := v.schemas[kind]
	if !ok {
		supported := make([]string, 0, len(v.schemas))
		for k := range v.schemas {
			supported = append(supported, string(k))
		}
		return fmt.Errorf("unsupported document kind: supported %s: got: %s",
			strings.Join(supported, ","),
			kind,
		)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", kind, err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validating %s: %w", kind, err)
	}
	// Join all leaf errors with newlines for readability
	return fmt.Errorf("%w: %s:\n%s", ErrInvalidDocument, kind, strings.Join(leafErrors(message.NewPrinter(language.English), verr), "\n"))
}

func leafErrors(printer *message.Printer, err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		return []string{fmt.Sprintf("/%s: %s",
			strings.Join(err.InstanceLocation, "/"),
			err.ErrorKind.LocalizedString(printer),
		)}
	}
	var ret []string
	for _, cause := range err.Causes {
		ret = append(ret, leafErrors(printer, cause)...)
	}
	return ret
}
