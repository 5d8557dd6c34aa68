// Package export renders completed simulations to SVG and GIF files.
// Both exporters consume the non-mutating Frames pathway, so exporting
// after an interactive session replays the exact same trajectories.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbital/internal/gravity"
)

var palette = []string{
	"#00ccff", "#ff8800", "#00ff88", "#ff44aa",
	"#ffee00", "#aa66ff", "#ff4444", "#66ffee",
}

// TrajectoriesToSVG renders one polyline per body from its trail, with
// the final position marked. Tracks shorter than 2 points are skipped.
func TrajectoriesToSVG(trails [][]gravity.Vec2, labels []string, width, height int) string {
	minX, maxX, minY, maxY := bounds(trails)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	toScreen := func(p gravity.Vec2) (float64, float64) {
		x := (p.X - minX) / (maxX - minX) * float64(width)
		y := float64(height) - (p.Y-minY)/(maxY-minY)*float64(height)
		return x, y
	}

	for i, trail := range trails {
		if len(trail) < 2 {
			continue
		}
		color := palette[i%len(palette)]

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for j, p := range trail {
			x, y := toScreen(p)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		x, y := toScreen(trail[len(trail)-1])
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>`, x, y, color))
		sb.WriteByte('\n')
		if i < len(labels) {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="11" font-family="monospace">%s</text>`,
				x+5, y-5, color, labels[i]))
			sb.WriteByte('\n')
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(trails [][]gravity.Vec2) (minX, maxX, minY, maxY float64) {
	first := true
	for _, trail := range trails {
		for _, p := range trail {
			if first {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if maxX-minX == 0 {
		maxX = minX + 1
	}
	if maxY-minY == 0 {
		maxY = minY + 1
	}

	padX := (maxX - minX) * 0.1
	padY := (maxY - minY) * 0.1
	return minX - padX, maxX + padX, minY - padY, maxY + padY
}
