package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/slidelayout"
	"github.com/tsawler/slidelayout/preview"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		output  string
		outline bool
		opts    extractOptions
	)

	cmd := &cobra.Command{
		Use:   "preview <deck.json|snapshot>",
		Short: "Render a deck as a PDF with one page per slide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			deck, warnings, err := a.loadDeck(cmd, path, opts)
			if err != nil {
				printWarnings(cmd.ErrOrStderr(), warnings)
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
			}
			ropts := preview.DefaultOptions()
			ropts.BaseDir = filepath.Dir(path)
			ropts.Outline = outline

			rendered, err := preview.NewRendererWithOptions(ropts).RenderFile(output, deck)
			for _, msg := range rendered {
				warnings = append(warnings, slidelayout.Warning{Stage: slidelayout.StagePreview, Message: msg})
			}
			printWarnings(cmd.ErrOrStderr(), warnings)
			if err != nil {
				return err
			}

			a.logger.Info().Str("output", output).Int("slides", len(deck)).Msg("preview written")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d slides)\n", output, len(deck))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF (default: input name with .pdf)")
	cmd.Flags().BoolVar(&outline, "outline", false, "frame every element box")
	cmd.Flags().StringVar(&opts.slideClass, "slide-class", "", "class marking slide containers (snapshots only)")
	return cmd
}
