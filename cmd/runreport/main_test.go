package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeReport(t *testing.T, dir, name string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	cells := map[string]interface{}{
		"A1": "Project: AG Smith",
		"A2": "Cycles Read 1", "B2": 151,
		"A3": "Density", "B3": 42.5,
		"A4": "Yield", "B4": "12,5 G",
	}
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	_, err := f.NewSheet("Run|QC")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Run|QC", "A1", "% >= Q30"))
	require.NoError(t, f.SetCellValue("Run|QC", "B1", 92.1))

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommandJSON(t *testing.T) {
	dir := t.TempDir()
	a := writeReport(t, dir, "240117_NovaSeq_RNAseq.xlsx")
	b := writeReport(t, dir, "240118_WES.xlsx")

	out, err := execute(t, "parse", a, b, "--jobs", "2")
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "240117_NovaSeq_RNAseq.xlsx", records[0]["source"])
	assert.Equal(t, "240118_WES.xlsx", records[1]["source"])
	assert.Equal(t, 151.0, records[0]["cycles_read_1"])
	assert.Equal(t, "12.5", records[0]["yield"])
	assert.Equal(t, 92.1, records[0]["q30"])
	assert.Nil(t, records[0]["cycles_index_1"])
}

func TestParseCommandCSVToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeReport(t, dir, "240117_RNAseq.xlsx")
	outFile := filepath.Join(dir, "records.csv")

	out, err := execute(t, "parse", in, "--format", "csv", "-o", outFile)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "sequencing_kit,"))
	assert.Contains(t, lines[1], "240117_RNAseq")
}

func TestParseCommandPartialFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeReport(t, dir, "240117_RNAseq.xlsx")
	missing := filepath.Join(dir, "240117_WGS.xlsx")

	out, err := execute(t, "parse", missing, good)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "240117_RNAseq.xlsx", records[0]["source"])
}

func TestParseCommandBadFormat(t *testing.T) {
	in := writeReport(t, t.TempDir(), "240117_RNAseq.xlsx")
	_, err := execute(t, "parse", in, "--format", "xml")
	assert.Error(t, err)
}

func TestParseCommandRequiresArgs(t *testing.T) {
	_, err := execute(t, "parse")
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	in := writeReport(t, t.TempDir(), "240117_RNAseq.xlsx")

	out, err := execute(t, "inspect", in)
	require.NoError(t, err)
	assert.Contains(t, out, `"book_name":"240117_RNAseq.xlsx"`)
	assert.Contains(t, out, `"density"`)
}

func TestInspectCommandSheetsDir(t *testing.T) {
	dir := t.TempDir()
	in := writeReport(t, dir, "240117_RNAseq.xlsx")
	sheets := filepath.Join(dir, "sheets")

	out, err := execute(t, "inspect", in, "--sheets-dir", sheets)
	require.NoError(t, err)
	assert.Empty(t, out)

	assert.FileExists(t, filepath.Join(sheets, "Sheet1.json"))
	assert.FileExists(t, filepath.Join(sheets, "Run_QC.json"))
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, ".xls\txls")
	assert.Contains(t, out, ".xlsb\txlsb")
	assert.Contains(t, out, ".xlsm\txlsx")
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	in := writeReport(t, dir, "240117_RNAseq.xlsx")
	cfgPath := filepath.Join(dir, "runreport.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("extract:\n  output: tsv\n"), 0644))

	out, err := execute(t, "parse", in, "--config", cfgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sequencing_kit\tcycles_read_1"))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("extract:\n  jobs: 0\n"), 0644))
	_, err = execute(t, "parse", in, "--config", bad)
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Run_QC", sanitizeFilename("Run|QC", 0))
	assert.Equal(t, "sheet3", sanitizeFilename("  ", 2))
}
