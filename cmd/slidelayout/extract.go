package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tsawler/slidelayout"
	"github.com/tsawler/slidelayout/media"
)

type extractOptions struct {
	output     string
	slideClass string
	precision  int
	compact    bool
	noClip     bool
	probe      bool
	ocr        bool
}

func newExtractCmd(a *app) *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract <snapshot>",
		Short: "Extract the slide deck of a snapshot as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.slideClass, "slide-class", "", "class marking slide containers")
	cmd.Flags().IntVar(&opts.precision, "precision", 0, "decimal places kept in geometry (-1 for full precision)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "write compact JSON")
	cmd.Flags().BoolVar(&opts.noClip, "no-clip", false, "keep boxes extending past the slide edges")
	cmd.Flags().BoolVar(&opts.probe, "probe", false, "read images to fill missing natural sizes (HTML fixtures)")
	cmd.Flags().BoolVar(&opts.ocr, "ocr", false, "fill empty alt text with recognised text (HTML fixtures)")
	return cmd
}

// extractor builds the configured extractor for path.
func (a *app) extractor(cmd *cobra.Command, path string, opts extractOptions) *slidelayout.Extractor {
	ext := slidelayout.Open(path).
		WithContext(cmd.Context()).
		WithConfig(a.cfg.LayoutConfig()).
		WithLogger(a.logger).
		Indent(a.cfg.Output.Indent)

	if opts.slideClass != "" {
		ext = ext.SlideClass(opts.slideClass)
	}
	if cmd.Flags().Changed("precision") {
		ext = ext.Precision(opts.precision)
	}
	if opts.compact {
		ext = ext.Indent("")
	}
	if opts.noClip {
		ext = ext.NoClip()
	}
	if opts.probe || opts.ocr || a.cfg.Media.Probe || a.cfg.Media.OCR {
		ext = ext.WithProber(media.NewProber(a.cfg.ProberConfig(filepath.Dir(path))))
	}
	if opts.ocr || a.cfg.Media.OCR {
		ext = ext.WithOCR()
	}
	return ext
}

func (a *app) runExtract(cmd *cobra.Command, path string, opts extractOptions) error {
	data, warnings, err := a.extractor(cmd, path, opts).JSON()
	printWarnings(cmd.ErrOrStderr(), warnings)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.output, err)
	}
	a.logger.Info().Str("output", opts.output).Int("bytes", len(data)).Msg("deck written")
	return nil
}

func printWarnings(w io.Writer, warnings []slidelayout.Warning) {
	yellow := color.New(color.FgYellow)
	for _, warning := range warnings {
		yellow.Fprintf(w, "warning: %s\n", warning)
	}
}
