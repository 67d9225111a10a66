package parser

import (
	"testing"

	"github.com/ukaji3/runreport-go/pkg/runreport/grid"
	"github.com/ukaji3/runreport-go/pkg/runreport/models"
)

func TestExtractCells(t *testing.T) {
	sheet := &grid.Sheet{Name: "Sheet1"}
	sheet.Set(0, 0, models.String("Header1"))
	sheet.Set(0, 1, models.String("Header2"))
	sheet.Set(1, 0, models.String("Density"))
	sheet.Set(1, 1, models.Number(200.5))
	sheet.Set(3, 0, models.String("Text"))

	rows := ExtractCells(sheet)

	// Row 3 (index 2) is blank and skipped
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}
	if rows[0].C["1"] != models.String("Header1") {
		t.Errorf("Expected 'Header1', got %v", rows[0].C["1"].Interface())
	}
	if rows[0].Labels != nil {
		t.Errorf("Expected no labels in header row, got %v", rows[0].Labels)
	}

	if rows[1].C["2"] != models.Number(200.5) {
		t.Errorf("Expected 200.5, got %v", rows[1].C["2"].Interface())
	}
	if rows[1].Labels["1"] != "density" {
		t.Errorf("Expected density label, got %v", rows[1].Labels)
	}

	if rows[2].R != 4 {
		t.Errorf("Expected row 4, got %d", rows[2].R)
	}
}

func TestInspect(t *testing.T) {
	wb := reportWorkbook()
	view := Inspect("240117_RNAseq.xlsx", wb)

	if view.BookName != "240117_RNAseq.xlsx" || view.Format != "xlsx" {
		t.Fatalf("unexpected header: %+v", view)
	}
	if len(view.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(view.Sheets))
	}
	if view.Sheets[0].Bounds != "A1:D5" {
		t.Errorf("Expected bounds A1:D5, got %q", view.Sheets[0].Bounds)
	}
	if view.Sheets[1].Name != "Lanes" {
		t.Errorf("Expected sheet Lanes, got %q", view.Sheets[1].Name)
	}
}
