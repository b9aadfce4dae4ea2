package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/CZERTAINLY/gh-trs/internal/log"
	"github.com/CZERTAINLY/gh-trs/internal/model"
	"github.com/CZERTAINLY/gh-trs/internal/publish"
	"github.com/CZERTAINLY/gh-trs/internal/trs"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "generate reads workflow configs and writes the TRS documents to dest",
		Args:  cobra.NoArgs,
		RunE:  a.doGenerate,
	}
}

func (a *app) doGenerate(cmd *cobra.Command, _ []string) error {
	ctx := log.ContextAttrs(cmd.Context(), slog.Group("gh-trs",
		slog.String("cmd", "generate"),
		slog.Int("pid", os.Getpid()),
	))
	if err := a.settings.Validate(); err != nil {
		return err
	}

	cfgs, err := loadConfigs(ctx, a.settings.Configs)
	if err != nil {
		return err
	}

	validator, err := trs.NewValidator()
	if err != nil {
		return err
	}
	publisher, err := publish.New(a.settings.Dest, a.settings.Generator(), validator)
	if err != nil {
		return err
	}
	defer func() {
		_ = publisher.Close()
	}()

	res, err := publisher.Publish(ctx, a.settings.Owner, a.settings.Repo, cfgs...)
	if err != nil {
		return err
	}
	for _, p := range res.Paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

// loadConfigs reads all config files concurrently. The order of the result
// follows paths.
func loadConfigs(ctx context.Context, paths []string) ([]*model.Config, error) {
	cfgs := make([]*model.Config, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			cfg, err := loadConfig(ctx, path)
			if err != nil {
				return err
			}
			cfgs[i] = cfg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cfgs, nil
}

func loadConfig(ctx context.Context, path string) (*model.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	cfg, err := model.LoadConfig(f)
	if err != nil {
		for _, d := range model.CueErrDetails(err) {
			slog.ErrorContext(ctx, "invalid config", "path", path, d.Attr("detail"))
		}
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	slog.DebugContext(ctx, "config loaded", "path", path, "id", cfg.ID, "version", cfg.Version)
	return cfg, nil
}
