package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/tsawler/slidelayout/css"
	"github.com/tsawler/slidelayout/model"
)

// painter holds the state of one render call.
type painter struct {
	pdf      *gofpdf.Fpdf
	opts     Options
	tr       func(string) string
	warnings []string

	pageW, pageH float64
	slideBG      string
	images       int
}

func (p *painter) slide(s *model.Slide) {
	p.pageW, p.pageH = s.Width*PxToPt, s.Height*PxToPt
	// the size is given as-is; a landscape orientation would swap it
	p.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: p.pageW, Ht: p.pageH})

	p.slideBG = s.Style.BackgroundColor
	if c, ok := css.ParseColor(s.Style.BackgroundColor); ok && !c.IsTransparent() {
		p.fillRect(0, 0, p.pageW, p.pageH, c)
	}

	for i := range s.Elements {
		p.element(s.SlideID, &s.Elements[i])
	}
}

func (p *painter) element(slideID int, el *model.Element) {
	x, y := el.X*PxToPt, el.Y*PxToPt
	w, h := el.Width*PxToPt, el.Height*PxToPt

	if el.Style.BackgroundColor != p.slideBG {
		if c, ok := css.ParseColor(el.Style.BackgroundColor); ok && !c.IsTransparent() {
			p.fillRect(x, y, w, h, c)
		}
	}
	p.borders(x, y, w, h, el.Style)

	switch {
	case el.MediaInfo != nil && el.Kind == model.KindImage:
		p.image(slideID, el.MediaInfo, x, y, w, h)
	case el.ListInfo != nil:
		p.list(el.ListInfo, 0)
	case el.TableInfo != nil:
		p.table(el.TableInfo)
	case el.InlineGroup != nil:
		p.runs(el.InlineGroup.Runs, x, y, w, el.Style)
	case el.Text != nil:
		p.text(*el.Text, x, y, w, el.Style)
	}

	if p.opts.Outline {
		p.pdf.SetDrawColor(200, 200, 200)
		p.pdf.SetLineWidth(0.25)
		p.pdf.Rect(x, y, w, h, "D")
	}
}

func (p *painter) fillRect(x, y, w, h float64, c css.Color) {
	r, g, b := c.Clamped().RGB255()
	p.pdf.SetAlpha(c.Alpha, "Normal")
	p.pdf.SetFillColor(int(r), int(g), int(b))
	p.pdf.Rect(x, y, w, h, "F")
	p.pdf.SetAlpha(1, "Normal")
}

func (p *painter) borders(x, y, w, h float64, s model.StyleRecord) {
	sides := []struct {
		width, style, color string
		x1, y1, x2, y2      float64
	}{
		{s.BorderTopWidth, s.BorderTopStyle, s.BorderTopColor, x, y, x + w, y},
		{s.BorderRightWidth, s.BorderRightStyle, s.BorderRightColor, x + w, y, x + w, y + h},
		{s.BorderBottomWidth, s.BorderBottomStyle, s.BorderBottomColor, x, y + h, x + w, y + h},
		{s.BorderLeftWidth, s.BorderLeftStyle, s.BorderLeftColor, x, y, x, y + h},
	}
	for _, side := range sides {
		width, ok := css.ParseBorderWidth(side.width)
		if !ok || width <= 0 || side.style == "none" || side.style == "hidden" {
			continue
		}
		c, ok := css.ParseColor(side.color)
		if !ok || c.IsTransparent() {
			continue
		}
		r, g, b := c.Clamped().RGB255()
		p.pdf.SetDrawColor(int(r), int(g), int(b))
		p.pdf.SetLineWidth(width * PxToPt)
		if side.style == "dashed" || side.style == "dotted" {
			p.pdf.SetDashPattern([]float64{3 * width, 2 * width}, 0)
		}
		p.pdf.Line(side.x1, side.y1, side.x2, side.y2)
		p.pdf.SetDashPattern([]float64{}, 0)
	}
}

// setFont applies the typography of s and returns the line height in
// points.
func (p *painter) setFont(s model.StyleRecord) float64 {
	size := 16.0
	if v, ok := css.ParseLength(s.FontSize); ok && v > 0 {
		size = v
	}
	p.pdf.SetFont(p.opts.FontFamily, fontStyle(s), size*PxToPt)
	if c, ok := css.ParseColor(s.Color); ok {
		r, g, b := c.Clamped().RGB255()
		p.pdf.SetTextColor(int(r), int(g), int(b))
	} else {
		p.pdf.SetTextColor(0, 0, 0)
	}
	return lineHeight(s, size) * PxToPt
}

func (p *painter) text(text string, x, y, w float64, s model.StyleRecord) {
	lh := p.setFont(s)
	p.pdf.SetXY(x, y)
	p.pdf.MultiCell(w, lh, p.tr(text), "", alignOf(s.TextAlign), false)
}

// runs writes inline runs as flowing text confined to the element width.
func (p *painter) runs(runs []model.Run, x, y, w float64, s model.StyleRecord) {
	p.pdf.SetLeftMargin(x)
	p.pdf.SetRightMargin(max(p.pageW-x-w, 0))
	defer p.pdf.SetMargins(0, 0, 0)

	lh := p.setFont(s)
	p.pdf.SetXY(x, y)
	for _, run := range runs {
		if run.Kind == model.RunLineBreak {
			p.pdf.Ln(lh)
			continue
		}
		lh = p.setFont(run.Style)
		if run.Kind == model.RunMark {
			if c, ok := css.ParseColor(run.Style.BackgroundColor); ok && !c.IsTransparent() {
				r, g, b := c.Clamped().RGB255()
				p.pdf.SetFillColor(int(r), int(g), int(b))
				p.pdf.Rect(p.pdf.GetX(), p.pdf.GetY(), p.pdf.GetStringWidth(p.tr(run.Text)), lh, "F")
			}
		}
		p.pdf.Write(lh, p.tr(run.Text))
	}
}

func (p *painter) list(info *model.ListInfo, depth int) {
	for i := range info.Items {
		item := &info.Items[i]
		b := item.BoundingBox
		x, y, w := b.X*PxToPt, b.Y*PxToPt, b.Width*PxToPt

		lh := p.setFont(item.Style)
		marker := p.tr(listMarker(info, i, depth))
		mw := p.pdf.GetStringWidth(marker) + 4
		p.pdf.SetXY(x-mw, y)
		p.pdf.CellFormat(mw, lh, marker, "", 0, "L", false, 0, "")

		if item.InlineGroup != nil {
			p.runs(item.InlineGroup.Runs, x, y, w, item.Style)
		} else {
			p.pdf.SetXY(x, y)
			p.pdf.CellFormat(w, lh, p.tr(item.Text), "", 0, "L", false, 0, "")
		}
		if item.NestedList != nil {
			p.list(item.NestedList, depth+1)
		}
	}
}

func (p *painter) table(info *model.TableInfo) {
	for _, row := range info.Rows {
		for _, cell := range row.Cells {
			b := cell.BoundingBox
			x, y, w, h := b.X*PxToPt, b.Y*PxToPt, b.Width*PxToPt, b.Height*PxToPt
			if c, ok := css.ParseColor(cell.Style.BackgroundColor); ok && !c.IsTransparent() && cell.Style.BackgroundColor != p.slideBG {
				p.fillRect(x, y, w, h, c)
			}
			p.borders(x, y, w, h, cell.Style)
			if cell.InlineGroup != nil {
				p.runs(cell.InlineGroup.Runs, x, y, w, cell.Style)
			} else {
				p.text(cell.Content(), x, y, w, cell.Style)
			}
		}
	}
}

func (p *painter) image(slideID int, m *model.MediaInfo, x, y, w, h float64) {
	name, ok := p.registerImage(m.Src)
	if ok {
		p.pdf.ImageOptions(name, x, y, w, h, false, gofpdf.ImageOptions{}, 0, "")
		if p.pdf.Ok() {
			return
		}
		p.pdf.ClearError()
	}
	p.warnings = append(p.warnings, fmt.Sprintf("slide %d: image %s drawn as placeholder", slideID, shorten(m.Src)))

	p.pdf.SetDrawColor(160, 160, 160)
	p.pdf.SetLineWidth(0.5)
	p.pdf.Rect(x, y, w, h, "D")
	p.pdf.Line(x, y, x+w, y+h)
	p.pdf.Line(x, y+h, x+w, y)
	if m.Alt != "" {
		p.pdf.SetFont(p.opts.FontFamily, "I", 8)
		p.pdf.SetTextColor(100, 100, 100)
		p.pdf.SetXY(x, y)
		p.pdf.MultiCell(w, 10, p.tr(m.Alt), "", "C", false)
	}
}

// registerImage makes src available to the PDF and returns its name.
func (p *painter) registerImage(src string) (string, bool) {
	if strings.HasPrefix(src, "data:") {
		comma := strings.IndexByte(src, ',')
		if comma < 0 {
			return "", false
		}
		meta := src[len("data:"):comma]
		typ := imageType(strings.TrimSuffix(strings.SplitN(meta, ";", 2)[0], ";base64"))
		if typ == "" || !strings.HasSuffix(meta, ";base64") {
			return "", false
		}
		data, err := base64.StdEncoding.DecodeString(src[comma+1:])
		if err != nil {
			return "", false
		}
		p.images++
		name := "inline-" + strconv.Itoa(p.images)
		p.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: typ}, bytes.NewReader(data))
		if !p.pdf.Ok() {
			p.pdf.ClearError()
			return "", false
		}
		return name, true
	}

	u, err := url.Parse(src)
	if err != nil || (u.Scheme != "" && u.Scheme != "file") {
		return "", false
	}
	path := filepath.FromSlash(u.Path)
	if !filepath.IsAbs(path) && p.opts.BaseDir != "" {
		path = filepath.Join(p.opts.BaseDir, path)
	}
	if imageType(strings.TrimPrefix(filepath.Ext(path), ".")) == "" {
		return "", false
	}
	return path, true
}

// imageType maps a MIME type or file extension to a gofpdf image type.
func imageType(s string) string {
	switch strings.ToLower(strings.TrimPrefix(s, "image/")) {
	case "png":
		return "PNG"
	case "jpg", "jpeg":
		return "JPG"
	case "gif":
		return "GIF"
	}
	return ""
}

func fontStyle(s model.StyleRecord) string {
	var style string
	if s.IsBold() {
		style += "B"
	}
	if s.IsItalic() {
		style += "I"
	}
	if strings.Contains(s.TextDecoration, "underline") {
		style += "U"
	}
	return style
}

func alignOf(textAlign string) string {
	switch textAlign {
	case "center":
		return "C"
	case "right", "end":
		return "R"
	case "justify":
		return "J"
	}
	return "L"
}

// lineHeight returns the used line height in pixels for a font size.
func lineHeight(s model.StyleRecord, fontSize float64) float64 {
	if v, ok := css.ParseLength(s.LineHeight); ok && v > 0 {
		if strings.HasSuffix(strings.TrimSpace(s.LineHeight), "px") {
			return v
		}
		return v * fontSize
	}
	return fontSize * 1.2
}

// listMarker returns the marker of item i.
func listMarker(info *model.ListInfo, i, depth int) string {
	if info.Kind == model.ListOrdered {
		start := 1
		if info.Start != nil {
			start = *info.Start
		}
		n := start + i
		if info.Reversed != nil && *info.Reversed {
			n = start - i
		}
		return strconv.Itoa(n) + "."
	}
	switch info.ListStyle.Type {
	case "none":
		return ""
	case "circle":
		return "o"
	case "square":
		return "-"
	}
	if info.ListStyle.Type == "" && depth > 0 {
		return "o"
	}
	return "•"
}

func shorten(src string) string {
	if len(src) > 48 {
		return src[:45] + "..."
	}
	return src
}
