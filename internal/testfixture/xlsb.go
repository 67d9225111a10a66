// Package testfixture builds binary workbooks for tests where no writer
// library exists.
package testfixture

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// XLSBCell is one cell of an XLSB fixture. V must be a float64 or a string.
type XLSBCell struct {
	Row, Col int
	V        interface{}
}

// ReportCells is the run report used by the xls and xlsb reader tests.
// Row 1 is blank and "Clusters PF" has no value.
var ReportCells = []XLSBCell{
	{0, 0, "Density"}, {0, 1, 42.5},
	{2, 0, "Cycles Read 1"}, {2, 1, 151.0},
	{3, 0, "Clusters PF"},
}

// WriteXLSB saves a single-sheet .xlsb named sheet under dir/name and
// returns its path. Cells must be sorted by row.
func WriteXLSB(t testing.TB, dir, name, sheet string, cells []XLSBCell) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildXLSB(t, sheet, cells), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// BuildXLSB returns the bytes of a single-sheet .xlsb.
func BuildXLSB(t testing.TB, sheet string, cells []XLSBCell) []byte {
	t.Helper()

	var strs []string
	index := map[string]uint32{}
	maxRow, maxCol := 0, 0
	for _, c := range cells {
		if s, ok := c.V.(string); ok {
			if _, seen := index[s]; !seen {
				index[s] = uint32(len(strs))
				strs = append(strs, s)
			}
		}
		maxRow = max(maxRow, c.Row)
		maxCol = max(maxCol, c.Col)
	}

	var wb bytes.Buffer
	writeRec(&wb, 0x0183, nil) // WORKBOOK start
	writeRec(&wb, 0x018F, nil) // SHEETS start
	var sheetRec bytes.Buffer
	sheetRec.Write(le32(0))
	sheetRec.Write(le32(1))
	sheetRec.Write(encStr("rId1"))
	sheetRec.Write(encStr(sheet))
	writeRec(&wb, 0x019C, sheetRec.Bytes())
	writeRec(&wb, 0x0190, nil) // SHEETS end
	writeRec(&wb, 0x0184, nil) // WORKBOOK end

	var sst bytes.Buffer
	writeRec(&sst, 0x019F, append(le32(uint32(len(strs))), le32(uint32(len(strs)))...))
	for _, s := range strs {
		writeRec(&sst, 0x0013, append([]byte{0x00}, encStr(s)...))
	}
	writeRec(&sst, 0x01A0, nil)

	var ws bytes.Buffer
	writeRec(&ws, 0x0181, nil) // WORKSHEET start
	var dim bytes.Buffer
	for _, v := range []int{0, maxRow, 0, maxCol} {
		dim.Write(le32(uint32(v)))
	}
	writeRec(&ws, 0x0194, dim.Bytes())
	writeRec(&ws, 0x0191, nil) // SHEETDATA start
	row := -1
	for _, c := range cells {
		if c.Row != row {
			row = c.Row
			writeRec(&ws, 0x0000, le32(uint32(row)))
		}
		var cell bytes.Buffer
		cell.Write(le32(uint32(c.Col)))
		cell.Write(le32(0)) // style
		switch v := c.V.(type) {
		case float64:
			var f [8]byte
			binary.LittleEndian.PutUint64(f[:], math.Float64bits(v))
			cell.Write(f[:])
			writeRec(&ws, 0x0005, cell.Bytes()) // FLOAT
		case string:
			cell.Write(le32(index[v]))
			writeRec(&ws, 0x0007, cell.Bytes()) // STRING
		default:
			t.Fatalf("unsupported xlsb cell value %T", c.V)
		}
	}
	writeRec(&ws, 0x0192, nil) // SHEETDATA end
	writeRec(&ws, 0x0182, nil) // WORKSHEET end

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	rels := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="worksheet" Target="worksheets/sheet1.bin"/>` +
		`</Relationships>`
	parts := []struct {
		name string
		data []byte
	}{
		{"xl/_rels/workbook.bin.rels", []byte(rels)},
		{"xl/workbook.bin", wb.Bytes()},
		{"xl/sharedStrings.bin", sst.Bytes()},
		{"xl/worksheets/sheet1.bin", ws.Bytes()},
	}
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			t.Fatalf("zip create %s: %v", p.name, err)
		}
		if _, err := f.Write(p.data); err != nil {
			t.Fatalf("zip write %s: %v", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return out.Bytes()
}

// writeRec writes a BIFF12 record: variable-length id, 7-bit length, payload.
func writeRec(buf *bytes.Buffer, id int, payload []byte) {
	if id < 0x80 {
		buf.WriteByte(byte(id))
	} else {
		buf.WriteByte(byte(id & 0xFF))
		buf.WriteByte(byte(id >> 8))
	}
	n := len(payload)
	for {
		b := n & 0x7F
		n >>= 7
		if n == 0 {
			buf.WriteByte(byte(b))
			break
		}
		buf.WriteByte(byte(b) | 0x80)
	}
	buf.Write(payload)
}

// encStr encodes s as a uint32 character count followed by UTF-16LE.
func encStr(s string) []byte {
	runes := []rune(s)
	b := le32(uint32(len(runes)))
	for _, r := range runes {
		b = binary.LittleEndian.AppendUint16(b, uint16(r))
	}
	return b
}

func le32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}
