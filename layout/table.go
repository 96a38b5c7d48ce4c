package layout

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

// ErrEmptyTable is returned for a table element without rows.
var ErrEmptyTable = errors.New("table has no rows")

// TableExtractor builds TableInfo records for table elements.
type TableExtractor struct {
	config   Config
	styles   *StyleResolver
	geometry *GeometryResolver
	grouper  *InlineGrouper
}

// NewTableExtractor creates a table extractor with default configuration
func NewTableExtractor() *TableExtractor {
	return NewTableExtractorWithConfig(DefaultConfig())
}

// NewTableExtractorWithConfig creates a table extractor with custom configuration
func NewTableExtractorWithConfig(config Config) *TableExtractor {
	return &TableExtractor{
		config:   config,
		styles:   NewStyleResolver(),
		geometry: NewGeometryResolverWithConfig(config),
		grouper:  NewInlineGrouperWithConfig(config),
	}
}

// Extract returns the table record of n. Rows of head, body and foot
// sections are flattened in document order; rows of nested tables are
// left to those tables.
func (e *TableExtractor) Extract(n, root *snapshot.Node) (*model.TableInfo, error) {
	trs := tableRows(n)
	if len(trs) == 0 {
		return nil, ErrEmptyTable
	}

	info := &model.TableInfo{
		BoundingBox: e.geometry.Relative(n, root),
		RowCount:    len(trs),
		Rows:        make([]model.TableRow, 0, len(trs)),
	}

	for i, tr := range trs {
		row := model.TableRow{
			Index:       i,
			BoundingBox: e.geometry.Relative(tr, root),
			Style:       e.styles.Resolve(tr),
			Cells:       []model.TableCell{},
		}
		for j, td := range tr.ChildrenByTag("td", "th") {
			row.Cells = append(row.Cells, e.cell(td, j, root))
		}
		info.Rows = append(info.Rows, row)
	}

	info.ColumnCount = model.ComputeColumnCount(info.Rows)
	info.HasHeader = hasHeader(trs)
	if captions := n.ChildrenByTag("caption"); len(captions) > 0 {
		info.Caption = cleanText(captions[0].TextContent())
	}
	return info, nil
}

func (e *TableExtractor) cell(td *snapshot.Node, index int, root *snapshot.Node) model.TableCell {
	c := model.TableCell{
		Kind:        td.Tag,
		CellIndex:   index,
		BoundingBox: e.geometry.Relative(td, root),
		Style:       e.styles.Resolve(td),
		ColSpan:     spanAttr(td, "colspan"),
		RowSpan:     spanAttr(td, "rowspan"),
	}
	if group := e.grouper.Group(td, root); group != nil {
		c.InlineGroup = group
		return c
	}
	text := cleanText(td.TextContent())
	c.Text = &text
	return c
}

func tableRows(table *snapshot.Node) []*snapshot.Node {
	var rows []*snapshot.Node
	for _, d := range table.Descendants() {
		if d.Tag != "tr" {
			continue
		}
		owner := d.Closest(func(p *snapshot.Node) bool { return p.Tag == "table" })
		if owner == table {
			rows = append(rows, d)
		}
	}
	return rows
}

func hasHeader(rows []*snapshot.Node) bool {
	for _, tr := range rows {
		if tr.Parent != nil && tr.Parent.Tag == "thead" {
			return true
		}
	}
	cells := rows[0].ChildrenByTag("td", "th")
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if c.Tag != "th" {
			return false
		}
	}
	return true
}

// spanAttr parses a colspan or rowspan attribute; values below 1 become 1.
func spanAttr(n *snapshot.Node, name string) int {
	v, ok := n.Attr(name)
	if !ok {
		return 1
	}
	span, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || span < 1 {
		return 1
	}
	return span
}
