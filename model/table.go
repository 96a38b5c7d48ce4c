package model

import "strings"

// TableInfo is the structured record of a table element.
type TableInfo struct {
	BoundingBox BBox       `json:"boundingBox"`
	RowCount    int        `json:"rowCount"`
	ColumnCount int        `json:"columnCount"`
	HasHeader   bool       `json:"hasHeader"`
	Caption     string     `json:"caption,omitempty"`
	Rows        []TableRow `json:"rows"`
}

// TableRow is one tr of a table, in document order across sections.
type TableRow struct {
	Index       int         `json:"index"`
	BoundingBox BBox        `json:"boundingBox"`
	Style       StyleRecord `json:"style"`
	Cells       []TableCell `json:"cells"`
}

// TableCell is a td or th. Text and InlineGroup are mutually exclusive.
type TableCell struct {
	Kind        string       `json:"kind"`
	CellIndex   int          `json:"cellIndex"`
	Text        *string      `json:"text,omitempty"`
	InlineGroup *InlineGroup `json:"inlineGroup,omitempty"`
	BoundingBox BBox         `json:"boundingBox"`
	Style       StyleRecord  `json:"style"`
	ColSpan     int          `json:"colSpan"`
	RowSpan     int          `json:"rowSpan"`
}

// IsHeader returns true for th cells
func (c *TableCell) IsHeader() bool {
	return c.Kind == "th"
}

// Content returns the cell's text in either content mode.
func (c *TableCell) Content() string {
	if c.InlineGroup != nil {
		return c.InlineGroup.Text
	}
	if c.Text != nil {
		return *c.Text
	}
	return ""
}

// SpanWidth returns the sum of colSpan across the row's cells.
func (r *TableRow) SpanWidth() int {
	total := 0
	for i := range r.Cells {
		span := r.Cells[i].ColSpan
		if span < 1 {
			span = 1
		}
		total += span
	}
	return total
}

// ComputeColumnCount returns the maximum span width over rows.
func ComputeColumnCount(rows []TableRow) int {
	max := 0
	for i := range rows {
		if w := rows[i].SpanWidth(); w > max {
			max = w
		}
	}
	return max
}

// PlainText returns the table as tab-separated rows.
func (t *TableInfo) PlainText() string {
	lines := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for j := range row.Cells {
			cells[j] = row.Cells[j].Content()
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return strings.Join(lines, "\n")
}
