package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/CZERTAINLY/gh-trs/internal/log"
	"github.com/CZERTAINLY/gh-trs/internal/publish"
	"github.com/CZERTAINLY/gh-trs/internal/trs"

	"github.com/spf13/cobra"
)

func (a *app) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "validate checks workflow configs and optionally the registry published in dest",
		Args:  cobra.NoArgs,
		RunE:  a.doValidate,
	}
	cmd.Flags().Bool("published", false, "validate documents already published in dest too")
	return cmd
}

func (a *app) doValidate(cmd *cobra.Command, _ []string) error {
	ctx := log.ContextAttrs(cmd.Context(), slog.Group("gh-trs",
		slog.String("cmd", "validate"),
		slog.Int("pid", os.Getpid()),
	))
	out := cmd.OutOrStdout()

	cfgs, err := loadConfigs(ctx, a.settings.Configs)
	if err != nil {
		return err
	}
	for i, cfg := range cfgs {
		if _, err := trs.NewDescriptorType(cfg.Workflow.Language.Type); err != nil {
			return fmt.Errorf("config %s: %w", a.settings.Configs[i], err)
		}
		if _, err := trs.DescriptorWrapper(cfg); err != nil {
			return fmt.Errorf("config %s: %w", a.settings.Configs[i], err)
		}
		fmt.Fprintf(out, "%s: ok\n", a.settings.Configs[i])
	}

	published, err := cmd.Flags().GetBool("published")
	if err != nil || !published {
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
	paths, err := publisher.Verify(ctx)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "registry is valid", "dest", a.settings.Dest, "documents", len(paths))
	fmt.Fprintf(out, "%s: %d documents ok\n", a.settings.Dest, len(paths))
	return nil
}
