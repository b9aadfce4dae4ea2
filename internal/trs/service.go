package trs

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/CZERTAINLY/gh-trs/internal/model"
)

const serviceDescription = "The GA4GH TRS API generated by gh-trs"

// DefaultServiceType is the product/version triple of gh-trs.
func DefaultServiceType() ServiceType {
	return ServiceType{
		Group:    Product,
		Artifact: Product,
		Version:  APIVersion,
	}
}

type serviceInfoField struct {
	name string
	copy func(dst, src *ServiceInfo)
}

// fields carried forward from a previously published service-info, version and
// updatedAt are always regenerated
var preservedServiceInfoFields = []serviceInfoField{
	{"id", func(dst, src *ServiceInfo) { dst.ID = src.ID }},
	{"name", func(dst, src *ServiceInfo) { dst.Name = src.Name }},
	{"type", func(dst, src *ServiceInfo) { dst.Type = src.Type }},
	{"description", func(dst, src *ServiceInfo) { dst.Description = clone(src.Description) }},
	{"organization", func(dst, src *ServiceInfo) { dst.Organization = src.Organization }},
	{"contactUrl", func(dst, src *ServiceInfo) { dst.ContactURL = clone(src.ContactURL) }},
	{"documentationUrl", func(dst, src *ServiceInfo) { dst.DocumentationURL = clone(src.DocumentationURL) }},
	{"createdAt", func(dst, src *ServiceInfo) { dst.CreatedAt = clone(src.CreatedAt) }},
	{"environment", func(dst, src *ServiceInfo) { dst.Environment = clone(src.Environment) }},
}

// PreservedServiceInfoFields returns JSON names of fields ServiceInfo copies from a prior record.
func PreservedServiceInfoFields() []string {
	ret := make([]string, len(preservedServiceInfoFields))
	for idx, f := range preservedServiceInfoFields {
		ret[idx] = f.name
	}
	return ret
}

// ServiceInfo builds the service-info of owner/repo. When prior is not nil,
// fields listed by PreservedServiceInfoFields are taken from it, so only
// version and updatedAt change between regenerations.
func (g Generator) ServiceInfo(prior *ServiceInfo, cfg *model.Config, owner, repo string) (ServiceInfo, error) {
	info, err := g.newServiceInfo(cfg, owner, repo)
	if err != nil {
		return ServiceInfo{}, err
	}
	if prior != nil {
		for _, f := range preservedServiceInfoFields {
			f.copy(&info, prior)
		}
	}
	return info, nil
}

func (g Generator) newServiceInfo(cfg *model.Config, owner, repo string) (ServiceInfo, error) {
	if err := checkNames(owner, repo); err != nil {
		return ServiceInfo{}, err
	}
	author, err := cfg.FirstAuthor()
	if err != nil {
		return ServiceInfo{}, err
	}
	orgURL, err := parseURL(fmt.Sprintf("https://%s/%s", g.hostingDomain(), author.GitHubAccount))
	if err != nil {
		return ServiceInfo{}, fmt.Errorf("%w: organization: %w", model.ErrInvalidURL, err)
	}

	now := g.now()
	return ServiceInfo{
		ID:          fmt.Sprintf("%s.%s.%s", repo, owner, Product),
		Name:        fmt.Sprintf("%s %s/%s", Product, owner, repo),
		Type:        DefaultServiceType(),
		Description: ptr(serviceDescription),
		Organization: Organization{
			Name: author.GitHubAccount,
			URL:  orgURL,
		},
		CreatedAt: ptr(now),
		UpdatedAt: ptr(now),
		Version:   now.Format(versionLayout),
	}, nil
}

// DecodeServiceInfo reads a previously published service-info.
func DecodeServiceInfo(r io.Reader) (*ServiceInfo, error) {
	var info ServiceInfo
	if err := json.NewDecoder(r).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding service-info: %w", err)
	}
	return &info, nil
}
