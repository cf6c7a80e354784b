package export

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders a one-page report: inputs, KPIs, metrics and a
// temperature chart.
func WritePDF(w io.Writer, d *Data) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "PFR Simulation Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Integrator: %s, dz = %g m, L = %g m", d.Integrator, d.Params.Dz, d.Params.Length))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Operating point")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Inlet temperature", fmt.Sprintf("%.2f K", d.Request.TIn)},
		{"Flow velocity", fmt.Sprintf("%.3f m/s", d.Request.Velocity)},
		{"Jacket temperature", fmt.Sprintf("%.2f K", d.Request.TJacket)},
		{"Final conversion", fmt.Sprintf("%.2f %%", d.Summary.FinalConversion)},
		{"Max temperature", fmt.Sprintf("%.2f K (%.2f C)", d.Summary.MaxTemperature, d.Summary.MaxTemperature-273.15)},
	}
	names := make([]string, 0, len(d.Metrics))
	for name := range d.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, [2]string{name, fmt.Sprintf("%.4f", d.Metrics[name])})
	}
	for _, row := range rows {
		pdf.CellFormat(70, 6, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 6, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Temperature profile")
	pdf.Ln(8)
	drawChart(pdf, d.ZAxis, d.Temperature, 20, pdf.GetY(), 170, 80)

	return pdf.Output(w)
}

func drawChart(pdf *gofpdf.Fpdf, xs, ys []float64, x0, y0, width, height float64) {
	pdf.SetDrawColor(120, 120, 120)
	pdf.Rect(x0, y0, width, height, "D")
	if len(xs) < 2 {
		return
	}

	minX, maxX := xs[0], xs[len(xs)-1]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	px := func(x float64) float64 { return x0 + (x-minX)/rangeX*width }
	py := func(y float64) float64 { return y0 + height - (y-minY)/rangeY*height }

	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(x0, y0+height+4, fmt.Sprintf("%.2f m", minX))
	pdf.Text(x0+width-12, y0+height+4, fmt.Sprintf("%.2f m", maxX))
	pdf.Text(x0-14, y0+3, fmt.Sprintf("%.1f K", maxY))
	pdf.Text(x0-14, y0+height, fmt.Sprintf("%.1f K", minY))

	pdf.SetDrawColor(220, 60, 40)
	pdf.SetLineWidth(0.4)
	for i := 1; i < len(xs); i++ {
		pdf.Line(px(xs[i-1]), py(ys[i-1]), px(xs[i]), py(ys[i]))
	}
}
