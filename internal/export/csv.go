// Package export serializes feature tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"spotfinder/internal/locate"
)

// WriteCSV writes a feature table as CSV with a header row. Columns are
// emitted in the canonical order [x, y, mass, size, ecc], plus a trailing
// integer frame column when withFrame is set. Regression fixtures index
// columns positionally, so the order must not change.
func WriteCSV(w io.Writer, feats []locate.Feature, withFrame bool) error {
	cw := csv.NewWriter(w)

	header := locate.Columns
	if withFrame {
		header = locate.ColumnsFrame
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(header))
	for _, ft := range feats {
		for i, v := range ft.Row() {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if withFrame {
			record[len(record)-1] = strconv.Itoa(ft.Frame)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
