package main

import (
	"fmt"
	"io"
	"os"

	"github.com/CZERTAINLY/gh-trs/internal/model"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/spf13/cobra"
)

func templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make-template",
		Short: "make-template writes a workflow config scaffold with a fresh id",
		Args:  cobra.NoArgs,
		RunE:  doTemplate,
	}
	cmd.Flags().StringP("output", "o", "", "File to write - default is stdout, an existing file is never overwritten")
	return cmd
}

func doTemplate(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return fmt.Errorf("creating file %s: %w", output, err)
		}
		defer func() {
			_ = f.Close()
		}()
		w = f
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(model.Template(uuid.New())); err != nil {
		return fmt.Errorf("storing template: %w", err)
	}
	return enc.Close()
}
