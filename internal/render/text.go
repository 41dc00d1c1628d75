package render

import (
	"bufio"
	"io"
	"strings"
)

// WriteText writes the page as plain text, one box per line with its
// footers indented beneath and a blank line between rows.
func WriteText(w io.Writer, p Page) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(p.Title + "\n")
	bw.WriteString(strings.Repeat("=", len(p.Title)) + "\n")
	for _, row := range p.Rows {
		bw.WriteString("\n")
		for _, box := range row {
			bw.WriteString(box.Title + ": " + box.Value + "\n")
			for _, m := range box.Footers() {
				bw.WriteString("    " + m.String() + "\n")
			}
		}
	}
	return bw.Flush()
}
