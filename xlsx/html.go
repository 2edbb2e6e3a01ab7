package xlsx

import (
	"fmt"
	"html"
	"strings"
)

// DebugHTML adds the cell kind as a data attribute to every rendered cell.
var DebugHTML bool

// RenderWorkbookHTML converts the IR into an HTML string. Highlighted cells
// get the "filled" class.
func RenderWorkbookHTML(m WorkbookModel) string {
	var builder strings.Builder

	builder.WriteString(`<style>
`)
	builder.WriteString(`.table { border-collapse: collapse; margin-bottom: 2em; }
`)
	builder.WriteString(`.table td { padding: 4px 8px; border:1px solid #333; white-space:nowrap; }
`)
	builder.WriteString(`.table td.label { font-weight: bold; text-align:left; }
`)
	builder.WriteString(`.table td.filled { background-color:#FFF2CC; }
`)
	builder.WriteString(`.sheet { margin-bottom: 2em; }
`)
	builder.WriteString(`</style>
`)

	for _, sheet := range m.Sheets {
		builder.WriteString(fmt.Sprintf(`<div class="sheet" data-name="%s">
`, html.EscapeString(sheet.Name)))
		builder.WriteString(`<div style="width:100%;overflow-x:auto;">
`)
		builder.WriteString(`<table class="table">
`)

		for _, row := range sheet.Rows {
			rowStyle := ""
			if row.Hidden {
				rowStyle = ` style="display:none;"`
			}
			builder.WriteString(fmt.Sprintf("  <tr%s>\n", rowStyle))
			for colIdx := 0; colIdx < sheet.ColCount; colIdx++ {
				var cell *RenderCell
				if colIdx < len(row.Cells) {
					cell = row.Cells[colIdx]
				}
				// Blank cell
				if cell == nil {
					builder.WriteString("    <td></td>\n")
					continue
				}

				var classes []string
				if colIdx == 0 {
					classes = append(classes, "label")
				}
				if cell.Highlight {
					classes = append(classes, "filled")
				}
				attr := ""
				if len(classes) > 0 {
					attr += fmt.Sprintf(` class="%s"`, strings.Join(classes, " "))
				}
				if cell.ColSpan > 1 {
					attr += fmt.Sprintf(" colspan=\"%d\"", cell.ColSpan)
				}
				if cell.RowSpan > 1 {
					attr += fmt.Sprintf(" rowspan=\"%d\"", cell.RowSpan)
				}
				if DebugHTML {
					attr += fmt.Sprintf(" data-kind=\"%s\"", cell.Kind)
				}

				escaped := html.EscapeString(cell.Value)
				// Excel stores explicit line breaks as \n; preserve them in HTML
				escaped = strings.ReplaceAll(escaped, "\n", "<br>")
				builder.WriteString(fmt.Sprintf("    <td data-cell=\"%s\"%s>%s</td>\n", cell.Ref, attr, escaped))

				// Skip over columns that are covered by this cell's colspan so we don't emit extra cells
				if cell.ColSpan > 1 {
					colIdx += cell.ColSpan - 1
				}
			}
			builder.WriteString("  </tr>\n")
		}
		builder.WriteString("</table>\n</div>\n</div>\n")
	}
	return builder.String()
}
