// Package css parses the small subset of CSS values the extractor reads from
// resolved styles: colours, pixel lengths, transform functions and inline
// style declarations.
//
// Colour parsing is backed by go-colorful so that every colour can be
// normalised to the rgb()/rgba() form a browser reports from
// getComputedStyle:
//
//	c, ok := css.ParseColor("#f00")
//	c.String() // "rgb(255, 0, 0)"
//
// Transforms are folded into a single [model.Matrix]; unparsable input is
// reported through the boolean result and callers fall back to the
// untransformed box.
package css
