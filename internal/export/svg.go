package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbview/internal/surface"
)

// CanvasToSVG converts a terminal cell canvas to SVG, one colored dot per
// drawn cell. scale is the dot pitch in SVG units.
func CanvasToSVG(t *surface.Term, scale float64) string {
	if t == nil {
		return ""
	}

	width := float64(t.Cols()) * scale
	height := float64(t.Rows()) * scale
	dotRadius := scale * 0.45

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, surface.HexColor(t.Background())))

	for row := 0; row < t.Rows(); row++ {
		for col := 0; col < t.Cols(); col++ {
			c, ok := t.CellColor(col, row)
			if !ok {
				continue
			}
			cx := float64(col)*scale + scale/2
			cy := float64(row)*scale + scale/2
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n",
				cx, cy, dotRadius, surface.HexColor(c)))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
