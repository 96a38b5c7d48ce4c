package slidelayout

import (
	"fmt"
	"strings"

	"github.com/tsawler/slidelayout/layout"
)

// Stage names the part of the pipeline a warning came from.
type Stage string

const (
	StageSnapshot Stage = "snapshot"
	StageLayout   Stage = "layout"
	StageMedia    Stage = "media"
	StagePreview  Stage = "preview"
)

// Warning is a non-fatal problem met while producing a result. The result
// is still usable; warnings explain where it may be incomplete.
type Warning struct {
	Stage Stage

	// SlideID is the 1-based slide the warning belongs to, 0 when it
	// concerns the whole deck.
	SlideID int

	Message string
}

// String formats the warning with its stage and slide
func (w Warning) String() string {
	if w.SlideID == 0 {
		return fmt.Sprintf("[%s] %s", w.Stage, w.Message)
	}
	return fmt.Sprintf("[%s] slide %d: %s", w.Stage, w.SlideID, w.Message)
}

// FormatWarnings joins warnings into one line per warning.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

func fromLayout(warnings []layout.Warning) []Warning {
	out := make([]Warning, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, Warning{Stage: StageLayout, SlideID: w.SlideID, Message: w.Message})
	}
	return out
}
