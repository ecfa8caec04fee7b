package report

import (
	"bytes"
	"os"

	"github.com/xuri/excelize/v2"
)

// BuildWorkbook renders the tables as an XLSX workbook, one sheet per table,
// in order.
func BuildWorkbook(tables ...Table) ([]byte, error) {
	f := excelize.NewFile()

	for ti, t := range tables {
		if ti == 0 {
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(t.Name); err != nil {
				return nil, err
			}
		}

		for ci, col := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(ci+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(t.Name, cell, col); err != nil {
				return nil, err
			}
		}

		for ri, row := range t.Rows {
			for ci, col := range t.Columns {
				cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(t.Name, cell, row[col]); err != nil {
					return nil, err
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWorkbook renders the tables and writes the workbook to path.
func WriteWorkbook(path string, tables ...Table) error {
	data, err := BuildWorkbook(tables...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
