package models

import "sort"

// Application is the canonical display label of a sequencing application.
type Application string

// ApplicationUnknown is reported when the filename suffix matches no known code.
const ApplicationUnknown Application = "unknown"

// applications maps lowercase filename codes to display labels.
// It is never written after initialisation; use LookupApplication.
var applications = map[string]Application{
	"rnaseq":    "RNAseq",
	"trnaseq":   "tRNAseq",
	"mrnaseq":   "mRNAseq",
	"3mrnaseq":  "3mRNAseq",
	"chipseq":   "ChIPseq",
	"atacseq":   "ATACseq",
	"ampliseq":  "ampliseq",
	"scrnaseq":  "scRNAseq",
	"scvdjseq":  "scVDJseq",
	"scatacseq": "scATACseq",
	"mirnaseq":  "miRNAseq",
	"bwgs":      "BWGS",
	"wes":       "WES",
	"fastq":     "fastq",
	"16s":       "16S",
	"mag":       "MAG",
}

var applicationCodes = func() []string {
	codes := make([]string, 0, len(applications))
	for code := range applications {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}()

// LookupApplication returns the label for an exact lowercase code.
func LookupApplication(code string) (Application, bool) {
	app, ok := applications[code]
	return app, ok
}

// ApplicationCodes returns the known codes in ascending order.
// The returned slice is a copy.
func ApplicationCodes() []string {
	out := make([]string, len(applicationCodes))
	copy(out, applicationCodes)
	return out
}
