// Package settings holds the command line settings of gh-trs. Values come
// from flags, GHTRS_* environment variables and an optional gh-trs.yaml, in
// this order of precedence.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CZERTAINLY/gh-trs/internal/log"
	"github.com/CZERTAINLY/gh-trs/internal/trs"
	"github.com/spf13/viper"
)

const EnvPrefix = "GHTRS"

type Settings struct {
	Owner   string   `mapstructure:"owner"`
	Repo    string   `mapstructure:"repo"`
	Dest    string   `mapstructure:"dest"`
	Configs []string `mapstructure:"config"`
	Hosting Hosting  `mapstructure:"hosting"`
	Log     Log      `mapstructure:"log"`
}

type Hosting struct {
	Domain      string `mapstructure:"domain"`
	PagesDomain string `mapstructure:"pages_domain"`
}

type Log struct {
	Verbose bool   `mapstructure:"verbose"`
	Format  string `mapstructure:"format"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("owner", "")
	v.SetDefault("repo", "")
	v.SetDefault("dest", ".")
	v.SetDefault("config", []string{"gh-trs.config.yml"})
	v.SetDefault("hosting.domain", trs.DefaultHostingDomain)
	v.SetDefault("hosting.pages_domain", trs.DefaultPagesDomain)
	v.SetDefault("log.verbose", false)
	v.SetDefault("log.format", log.FormatJSON)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// Validate checks settings needed for generating a registry.
func (s Settings) Validate() error {
	var errs []error
	if s.Owner == "" {
		errs = append(errs, errors.New("owner is required"))
	}
	if s.Repo == "" {
		errs = append(errs, errors.New("repo is required"))
	}
	if s.Dest == "" {
		errs = append(errs, errors.New("dest is required"))
	}
	if len(s.Configs) == 0 {
		errs = append(errs, errors.New("at least one config is required"))
	}
	return errors.Join(errs...)
}

func (s Settings) Generator() trs.Generator {
	return trs.Generator{
		HostingDomain: s.Hosting.Domain,
		PagesDomain:   s.Hosting.PagesDomain,
	}
}
