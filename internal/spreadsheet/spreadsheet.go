// Package spreadsheet decodes workbook bytes into per-sheet string grids.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedWorkbook = errors.New("unsupported workbook format")

// Sheet is one worksheet as a 2-D grid of cell strings. Rows may be ragged.
type Sheet struct {
	Name string
	Rows [][]string
}

// Decoder turns workbook bytes into sheets in workbook order.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads a workbook of the given extension ("xls" or "xlsx").
func (d *Decoder) Decode(ext string, r io.Reader) ([]Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}

	switch strings.ToLower(ext) {
	case "xlsx":
		return decodeXLSX(data)
	case "xls":
		return decodeXLS(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedWorkbook, ext)
	}
}

func decodeXLSX(data []byte) ([]Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}

func decodeXLS(data []byte) ([]Sheet, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	var sheets []Sheet
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		sheet := Sheet{Name: ws.Name}
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := ws.Row(r)
			if row == nil {
				sheet.Rows = append(sheet.Rows, nil)
				continue
			}
			cells := make([]string, 0, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			sheet.Rows = append(sheet.Rows, cells)
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
