package trs

import (
	"time"

	"github.com/CZERTAINLY/gh-trs/internal/model"
	"github.com/google/uuid"
)

// GA4GH TRS API v2.0.1 type definitions.
// https://raw.githubusercontent.com/ga4gh/tool-registry-schemas/develop/openapi/openapi.yaml
//
// Optional attributes are pointers or slices and are omitted from JSON when
// not set.

// ServiceInfo is the service-info document of the registry.
// https://raw.githubusercontent.com/ga4gh-discovery/ga4gh-service-info/v1.0.0/service-info.yaml#/paths/~1service-info
type ServiceInfo struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Type             ServiceType  `json:"type"`
	Description      *string      `json:"description,omitempty"`
	Organization     Organization `json:"organization"`
	ContactURL       *string      `json:"contactUrl,omitempty"`
	DocumentationURL *string      `json:"documentationUrl,omitempty"`
	CreatedAt        *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time   `json:"updatedAt,omitempty"`
	Environment      *string      `json:"environment,omitempty"`
	Version          string       `json:"version"`
}

// ServiceType is the product/version triple of the generator.
type ServiceType struct {
	Group    string `json:"group"`
	Artifact string `json:"artifact"`
	Version  string `json:"version"`
}

type Organization struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Checksum struct {
	Checksum string `json:"checksum"`
	Type     string `json:"type"`
}

// FileType is a role of a file served by the registry.
type FileType int

const (
	FileTypeTestFile FileType = iota + 1
	FileTypePrimaryDescriptor
	FileTypeSecondaryDescriptor
	FileTypeContainerfile
	FileTypeOther
)

var fileTypes = model.NewEnumTable("trs file type", map[FileType]string{
	FileTypeTestFile:            "TEST_FILE",
	FileTypePrimaryDescriptor:   "PRIMARY_DESCRIPTOR",
	FileTypeSecondaryDescriptor: "SECONDARY_DESCRIPTOR",
	FileTypeContainerfile:       "CONTAINERFILE",
	FileTypeOther:               "OTHER",
})

func (t FileType) String() string { return fileTypes.String(t) }

func (t FileType) MarshalText() ([]byte, error) { return fileTypes.Marshal(t) }

func (t *FileType) UnmarshalText(text []byte) (err error) {
	*t, err = fileTypes.Unmarshal(text)
	return
}

type ToolFile struct {
	Path     *string   `json:"path,omitempty"`
	FileType *FileType `json:"fileType,omitempty"`
}

type ToolClass struct {
	ID          *string `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Tool is one workflow exposed by the registry.
type Tool struct {
	URL          string        `json:"url"`
	ID           uuid.UUID     `json:"id"`
	Aliases      []string      `json:"aliases,omitempty"`
	Organization string        `json:"organization"`
	Name         *string       `json:"name,omitempty"`
	ToolClass    ToolClass     `json:"toolClass"`
	Description  *string       `json:"description,omitempty"`
	MetaVersion  *string       `json:"metaVersion,omitempty"`
	HasChecker   *bool         `json:"hasChecker,omitempty"`
	CheckerURL   *string       `json:"checkerUrl,omitempty"`
	Versions     []ToolVersion `json:"versions"`
}

// ToolVersion is one published version of a Tool.
type ToolVersion struct {
	Author         []string         `json:"author,omitempty"`
	Name           *string          `json:"name,omitempty"`
	URL            string           `json:"url"`
	ID             uuid.UUID        `json:"id"`
	IsProduction   *bool            `json:"isProduction,omitempty"`
	Images         []ImageData      `json:"images,omitempty"`
	DescriptorType []DescriptorType `json:"descriptorType,omitempty"`
	Containerfile  *bool            `json:"containerfile,omitempty"`
	MetaVersion    *string          `json:"metaVersion,omitempty"`
	Verified       *bool            `json:"verified,omitempty"`
	VerifiedSource []string         `json:"verifiedSource,omitempty"`
	Signed         *bool            `json:"signed,omitempty"`
	IncludedApps   []string         `json:"includedApps,omitempty"`
}

type ImageData struct {
	RegistryHost *string    `json:"registryHost,omitempty"`
	ImageName    *string    `json:"imageName,omitempty"`
	Size         *int64     `json:"size,omitempty"`
	Updated      *string    `json:"updated,omitempty"`
	Checksum     []Checksum `json:"checksum,omitempty"`
	ImageType    *ImageType `json:"imageType,omitempty"`
}

type ImageType int

const (
	ImageTypeDocker ImageType = iota + 1
	ImageTypeSingularity
	ImageTypeConda
)

var imageTypes = model.NewEnumTable("image type", map[ImageType]string{
	ImageTypeDocker:      "DOCKER",
	ImageTypeSingularity: "SINGULARITY",
	ImageTypeConda:       "CONDA",
})

func (t ImageType) String() string { return imageTypes.String(t) }

func (t ImageType) MarshalText() ([]byte, error) { return imageTypes.Marshal(t) }

func (t *ImageType) UnmarshalText(text []byte) (err error) {
	*t, err = imageTypes.Unmarshal(text)
	return
}

// FileWrapper wraps a content of a descriptor or a test file.
type FileWrapper struct {
	Content  *string    `json:"content,omitempty"`
	Checksum []Checksum `json:"checksum,omitempty"`
	URL      *string    `json:"url,omitempty"`
}
