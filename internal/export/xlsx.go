package export

import (
	"io"
	"sort"

	"github.com/xuri/excelize/v2"
)

const (
	profileSheet = "Profile"
	summarySheet = "Summary"
)

// WriteXLSX writes a workbook with the axial profile on one sheet and the
// inputs, summary and metrics on another.
func WriteXLSX(w io.Writer, d *Data) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", profileSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(profileSheet, "A1", &[]interface{}{"z [m]", "T [K]", "C_A [-]"}); err != nil {
		return err
	}
	for i := range d.ZAxis {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{d.ZAxis[i], d.Temperature[i], d.Concentration[i]}
		if err := f.SetSheetRow(profileSheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"T_in [K]", d.Request.TIn},
		{"Flow_Velocity [m/s]", d.Request.Velocity},
		{"T_jacket [K]", d.Request.TJacket},
		{"integrator", d.Integrator},
		{"final_conversion [%]", d.Summary.FinalConversion},
		{"max_temperature [K]", d.Summary.MaxTemperature},
	}
	names := make([]string, 0, len(d.Metrics))
	for name := range d.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, []interface{}{name, d.Metrics[name]})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
