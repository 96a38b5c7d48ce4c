// Package preview renders extracted slide decks to PDF.
//
// The renderer is a reference consumer of the layout model: it uses only
// the serialised deck, never the source snapshot. Each slide becomes one
// page of the slide's size; elements are painted in deck order, which is
// z-order. Backgrounds, borders, text, inline runs, list items, table cells
// and local or inline images are drawn from their structured records.
//
//	r := preview.NewRenderer()
//	warnings, err := r.RenderFile("deck.pdf", deck)
//
// Pixel geometry is converted at 96 dpi (1px = 0.75pt).
package preview
