package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/runreport-go/pkg/runreport/models"
)

// ErrMalformedFilename indicates the report name does not follow
// YYMMDD_..._<application>.
var ErrMalformedFilename = errors.New("malformed report filename")

// FilenameError describes why a report name was rejected.
type FilenameError struct {
	Name   string
	Reason string
}

func (e *FilenameError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrMalformedFilename, e.Name, e.Reason)
}

func (e *FilenameError) Unwrap() error {
	return ErrMalformedFilename
}

// PhixCutoff is the day the PhiX protocol was introduced. Only runs dated
// strictly after it report a PhiX input.
var PhixCutoff = time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)

// DefaultMatchCutoff is the minimum similarity for an application match.
const DefaultMatchCutoff = 0.6

// Metadata is what the report's file name tells about the run.
type Metadata struct {
	// Name is the base name without directory and extension.
	Name string
	// RunDate is the YYMMDD prefix as a UTC date, years counted from 2000.
	RunDate time.Time
	// DateSegment and AppSegment are the first and last "_" segments.
	DateSegment string
	AppSegment  string
	// ProtocolName is "<DateSegment>_<AppSegment>".
	ProtocolName string
	Application  models.Application
}

// PhixAllowed reports whether the run date is after cutoff.
func (m Metadata) PhixAllowed(cutoff time.Time) bool {
	return m.RunDate.After(cutoff)
}

// BaseName strips the directory and the last extension from path.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// InferMetadata parses the run date and application code from a report
// path. matchCutoff is the similarity threshold for the application code;
// values <= 0 select DefaultMatchCutoff.
func InferMetadata(path string, matchCutoff float64) (Metadata, error) {
	if matchCutoff <= 0 {
		matchCutoff = DefaultMatchCutoff
	}

	name := BaseName(path)
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return Metadata{}, &FilenameError{Name: name, Reason: "expected <YYMMDD>_..._<application>"}
	}

	dateSegment := parts[0]
	runDate, err := parseRunDate(dateSegment)
	if err != nil {
		return Metadata{}, &FilenameError{Name: name, Reason: err.Error()}
	}

	appSegment := parts[len(parts)-1]
	return Metadata{
		Name:         name,
		RunDate:      runDate,
		DateSegment:  dateSegment,
		AppSegment:   appSegment,
		ProtocolName: dateSegment + "_" + appSegment,
		Application:  MatchApplication(appSegment, matchCutoff),
	}, nil
}

// parseRunDate reads YYMMDD as a date in the 2000s.
func parseRunDate(segment string) (time.Time, error) {
	if len(segment) != 6 {
		return time.Time{}, fmt.Errorf("date segment %q is not YYMMDD", segment)
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return time.Time{}, fmt.Errorf("date segment %q is not numeric", segment)
		}
	}

	yy, _ := strconv.Atoi(segment[0:2])
	mm, _ := strconv.Atoi(segment[2:4])
	dd, _ := strconv.Atoi(segment[4:6])

	t := time.Date(2000+yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if int(t.Month()) != mm || t.Day() != dd {
		return time.Time{}, fmt.Errorf("date segment %q is not a calendar date", segment)
	}
	return t, nil
}
