package export

import (
	"fmt"
	"io"
	"strings"
)

// WriteSVG charts the "temperature" or "concentration" profile of d.
func WriteSVG(w io.Writer, d *Data, profile string) error {
	var ys []float64
	var color string
	switch profile {
	case "", "temperature":
		ys, color = d.Temperature, "#ff5533"
	case "concentration":
		ys, color = d.Concentration, "#3399ff"
	default:
		return fmt.Errorf("unknown profile: %s (available: temperature, concentration)", profile)
	}
	_, err := io.WriteString(w, ProfileSVG(d.ZAxis, ys, 800, 400, color))
	return err
}

// ProfileSVG draws y against z as a single polyline.
func ProfileSVG(z, y []float64, width, height int, strokeColor string) string {
	if len(z) < 2 || len(z) != len(y) {
		return ""
	}

	minX, maxX := z[0], z[0]
	minY, maxY := y[0], y[0]
	for i := range z {
		if z[i] < minX {
			minX = z[i]
		}
		if z[i] > maxX {
			maxX = z[i]
		}
		if y[i] < minY {
			minY = y[i]
		}
		if y[i] > maxY {
			maxY = y[i]
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range z {
		px := (z[i] - minX) / rangeX * float64(width)
		py := float64(height) - (y[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
