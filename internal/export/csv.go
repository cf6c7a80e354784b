package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

func WriteCSV(w io.Writer, d *Data) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"z", "temperature", "concentration"}); err != nil {
		return err
	}
	for i := range d.ZAxis {
		row := []string{
			strconv.FormatFloat(d.ZAxis[i], 'f', 6, 64),
			strconv.FormatFloat(d.Temperature[i], 'f', 6, 64),
			strconv.FormatFloat(d.Concentration[i], 'f', 8, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, d *Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
