package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/san-kum/pfrsim/internal/reactor"
)

// Data is the exported view of one simulation.
type Data struct {
	Request       reactor.Request    `json:"request"`
	Integrator    string             `json:"integrator"`
	Params        reactor.Params     `json:"params"`
	Summary       reactor.Summary    `json:"summary"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
	ZAxis         []float64          `json:"z_axis"`
	Temperature   []float64          `json:"temperature_profile"`
	Concentration []float64          `json:"concentration_profile"`
}

func NewData(res *reactor.Result, p reactor.Params, metrics map[string]float64) *Data {
	return &Data{
		Request:       res.Request,
		Integrator:    res.Integrator,
		Params:        p,
		Summary:       res.Summary,
		Metrics:       metrics,
		ZAxis:         res.Profile.Z,
		Temperature:   res.Profile.T,
		Concentration: res.Profile.C,
	}
}

var Formats = []string{"csv", "json", "xlsx", "pdf", "svg"}

// FormatFromPath guesses the export format from a file extension.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func Write(w io.Writer, format string, d *Data) error {
	switch format {
	case "csv":
		return WriteCSV(w, d)
	case "json":
		return WriteJSON(w, d)
	case "xlsx":
		return WriteXLSX(w, d)
	case "pdf":
		return WritePDF(w, d)
	case "svg":
		return WriteSVG(w, d, "temperature")
	default:
		return fmt.Errorf("unknown export format: %s (available: %v)", format, Formats)
	}
}
