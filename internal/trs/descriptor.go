package trs

import (
	"fmt"

	"github.com/CZERTAINLY/gh-trs/internal/model"
)

// DescriptorType is a workflow language of a tool version.
type DescriptorType int

const (
	DescriptorCWL DescriptorType = iota + 1
	DescriptorWDL
	DescriptorNFL
	DescriptorSMK // extension of TRS 2.0.1
)

var descriptorTypes = model.NewEnumTable("descriptor type", map[DescriptorType]string{
	DescriptorCWL: "CWL",
	DescriptorWDL: "WDL",
	DescriptorNFL: "NFL",
	DescriptorSMK: "SMK",
})

func (t DescriptorType) String() string { return descriptorTypes.String(t) }

func (t DescriptorType) MarshalText() ([]byte, error) { return descriptorTypes.Marshal(t) }

func (t *DescriptorType) UnmarshalText(text []byte) (err error) {
	*t, err = descriptorTypes.Unmarshal(text)
	return
}

var languageToDescriptor = map[model.LanguageType]DescriptorType{
	model.LanguageCWL: DescriptorCWL,
	model.LanguageWDL: DescriptorWDL,
	model.LanguageNFL: DescriptorNFL,
	model.LanguageSMK: DescriptorSMK,
}

// NewDescriptorType maps a workflow language to the descriptor type.
// Nil lang results in model.ErrMissingLanguageType.
func NewDescriptorType(lang *model.LanguageType) (DescriptorType, error) {
	if lang == nil {
		return 0, model.ErrMissingLanguageType
	}
	t, ok := languageToDescriptor[*lang]
	if !ok {
		return 0, fmt.Errorf("unsupported language type: %s", *lang)
	}
	return t, nil
}

// WithPlain returns the same descriptor type from the plain-aware set.
func (t DescriptorType) WithPlain() DescriptorTypeWithPlain {
	return descriptorWithPlain[t]
}

// DescriptorTypeWithPlain extends DescriptorType with variants serving raw files.
type DescriptorTypeWithPlain int

const (
	WithPlainCWL DescriptorTypeWithPlain = iota + 1
	WithPlainWDL
	WithPlainNFL
	WithPlainSMK
	PlainCWL
	PlainWDL
	PlainNFL
	PlainSMK
)

var descriptorTypesWithPlain = model.NewEnumTable("descriptor type with plain", map[DescriptorTypeWithPlain]string{
	WithPlainCWL: "CWL",
	WithPlainWDL: "WDL",
	WithPlainNFL: "NFL",
	WithPlainSMK: "SMK",
	PlainCWL:     "PLAIN_CWL",
	PlainWDL:     "PLAIN_WDL",
	PlainNFL:     "PLAIN_NFL",
	PlainSMK:     "PLAIN_SMK",
})

var descriptorWithPlain = map[DescriptorType]DescriptorTypeWithPlain{
	DescriptorCWL: WithPlainCWL,
	DescriptorWDL: WithPlainWDL,
	DescriptorNFL: WithPlainNFL,
	DescriptorSMK: WithPlainSMK,
}

func (t DescriptorTypeWithPlain) String() string { return descriptorTypesWithPlain.String(t) }

func (t DescriptorTypeWithPlain) MarshalText() ([]byte, error) {
	return descriptorTypesWithPlain.Marshal(t)
}

func (t *DescriptorTypeWithPlain) UnmarshalText(text []byte) (err error) {
	*t, err = descriptorTypesWithPlain.Unmarshal(text)
	return
}
