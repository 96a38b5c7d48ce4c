package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tsawler/slidelayout/model"
)

func newInspectCmd(a *app) *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "inspect <deck.json|snapshot>",
		Short: "Summarise the slides of a deck by element kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, warnings, err := a.loadDeck(cmd, args[0], opts)
			printWarnings(cmd.ErrOrStderr(), warnings)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), deck)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.slideClass, "slide-class", "", "class marking slide containers (snapshots only)")
	return cmd
}

// printSummary writes one row per slide with its size and element counts
// by kind.
func printSummary(w io.Writer, deck model.Deck) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)

	bold.Fprintf(w, "%d slides, %d elements\n\n", len(deck), deck.ElementCount())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLIDE\tSIZE\tELEMENTS\tKINDS")
	for i := range deck {
		s := &deck[i]
		fmt.Fprintf(tw, "%d\t%gx%g\t%d\t%s\n", s.SlideID, s.Width, s.Height, s.ElementCount(), kindCounts(s))
	}
	_ = tw.Flush()

	if invalid := deck.Validate(); invalid != nil {
		red.Fprintf(w, "\ninvalid deck: %v\n", invalid)
	}
}

// kindCounts formats the per-kind counts of a slide in kind order.
func kindCounts(s *model.Slide) string {
	counts := s.CountByKind()
	var parts []string
	for k := model.KindBlock; k <= model.KindRule; k++ {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", k, n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
