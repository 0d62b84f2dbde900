package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolgrid/gridfile"
	"github.com/katalvlaran/boolgrid/internal/config"
)

type renderOpts struct {
	mode  string
	cells string
}

func newRenderCommand(root *rootOpts) *cobra.Command {
	opts := &renderOpts{}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a grid document",
		Long: `Render a grid document as glyph rows (display) or as a nested listing (debug).

If no file is given, or the file is "-", the document is read from stdin.

Examples:
  boolgrid render glider.yaml
  boolgrid render --mode debug glider.yaml
  echo '{"rows": [[true, false], [false, true]]}' | boolgrid render`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", config.ModeDisplay, "render mode (display, debug)")
	cmd.Flags().StringVar(&opts.cells, "cells", "", "force cell kind (bool, u8)")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootOpts, opts *renderOpts, args []string) error {
	cfg, err := config.Read(root.cfgFile)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = opts.mode
	}
	if cmd.Flags().Changed("cells") {
		cfg.Cells = opts.cells
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	var force gridfile.Kind
	if cfg.Cells != "" {
		if force, err = gridfile.ParseKind(cfg.Cells); err != nil {
			return err
		}
	}

	src := "-"
	if len(args) == 1 {
		src = args[0]
	}
	doc, err := readDocument(cmd.InOrStdin(), src, force)
	if err != nil {
		return errors.Wrapf(err, "failed to read grid from %s", src)
	}

	rows, cols := doc.Dims()
	logrus.Debugf("loaded %s grid from %s: %d rows, %d cols", doc.Kind, src, rows, cols)

	out := doc.Display()
	if cfg.Mode == config.ModeDebug {
		out = doc.Debug() + "\n"
	}
	if _, err = io.WriteString(cmd.OutOrStdout(), out); err != nil {
		return errors.Wrap(err, "failed to write output")
	}

	return nil
}

func readDocument(stdin io.Reader, src string, force gridfile.Kind) (*gridfile.Document, error) {
	if src == "-" {
		return gridfile.Decode(stdin, force)
	}

	return gridfile.Load(src, force)
}
