package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/CZERTAINLY/gh-trs/internal/log"
	"github.com/CZERTAINLY/gh-trs/internal/settings"
	"github.com/CZERTAINLY/gh-trs/internal/trs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by subcommands of one execution
type app struct {
	v        *viper.Viper
	settings settings.Settings
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("gh-trs failed", "err", err)
		os.Exit(1)
	}
}

// flagKeys maps command line flags to settings keys
var flagKeys = map[string]string{
	"config":         "config",
	"owner":          "owner",
	"repo":           "repo",
	"dest":           "dest",
	"hosting-domain": "hosting.domain",
	"pages-domain":   "hosting.pages_domain",
	"verbose":        "log.verbose",
	"log-format":     "log.format",
}

func newRootCmd() *cobra.Command {
	a := &app{v: settings.New()}

	rootCmd := &cobra.Command{
		Use:          "gh-trs",
		Short:        "Tool generating a GA4GH TRS registry served as static files",
		SilenceUsage: true,
		// never print messages
		SilenceErrors: true,
		// read settings, setup logging
		PersistentPreRunE: a.init,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("settings", "", "Settings file to load - default is gh-trs.yaml in current directory")
	flags.StringSlice("config", []string{"gh-trs.config.yml"}, "Workflow config file, can be repeated")
	flags.String("owner", "", "Owner of the repository hosting the registry")
	flags.String("repo", "", "Name of the repository hosting the registry")
	flags.String("dest", ".", "Directory the registry is written to")
	flags.String("hosting-domain", trs.DefaultHostingDomain, "Domain of the git hosting")
	flags.String("pages-domain", trs.DefaultPagesDomain, "Domain of the static pages")
	flags.Bool("verbose", false, "verbose logging")
	flags.String("log-format", log.FormatJSON, "log format ("+log.FormatJSON+","+log.FormatText+")")
	for flag, key := range flagKeys {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(a.generateCmd())
	rootCmd.AddCommand(a.validateCmd())
	rootCmd.AddCommand(templateCmd())
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version provide version of a gh-trs",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		info, ok := debug.ReadBuildInfo()
		if !ok {
			fmt.Fprintln(out, "gh-trs: version info not available")
			return
		}

		fmt.Fprintf(out, "gh-trs: %s\n", info.Main.Version)
		fmt.Fprintf(out, "trs:    %s\n", trs.APIVersion)
		fmt.Fprintf(out, "go:     %s\n", info.GoVersion)
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				fmt.Fprintf(out, "commit: %s\n", s.Value)
			case "vcs.time":
				fmt.Fprintf(out, "date:   %s\n", s.Value)
			case "vcs.modified":
				fmt.Fprintf(out, "dirty:  %s\n", s.Value)
			}
		}
	},
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	settingsPath, err := cmd.Flags().GetString("settings")
	if err != nil {
		return err
	}
	if settingsPath != "" {
		a.v.SetConfigFile(settingsPath)
	} else {
		a.v.SetConfigName("gh-trs")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		// the default settings file is optional
		var notFound viper.ConfigFileNotFoundError
		if settingsPath != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading settings: %w", err)
		}
	}

	s, err := settings.Load(a.v)
	if err != nil {
		return err
	}

	logger, err := log.New(cmd.ErrOrStderr(), s.Log.Format, s.Log.Verbose)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	a.settings = s

	slog.Debug("gh-trs run", "settings", a.v.ConfigFileUsed())
	slog.Debug("gh-trs run", "config", s.Configs, "dest", s.Dest)
	return nil
}
