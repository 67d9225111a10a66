// Package runreport extracts sequencing-run metrics from instrument report
// spreadsheets.
package runreport

import (
	"time"

	"github.com/ukaji3/runreport-go/pkg/runreport/grid"
	"github.com/ukaji3/runreport-go/pkg/runreport/parser"
	"go.uber.org/zap"
)

// Options configures extraction behavior.
type Options struct {
	// PhixCutoff is the last date without a PhiX protocol. Runs on or before
	// it never report a PhiX input. Zero means parser.PhixCutoff.
	PhixCutoff time.Time
	// MatchCutoff is the minimum similarity for an application code match.
	// Zero means parser.DefaultMatchCutoff.
	MatchCutoff float64
	// Origins overrides the scan origin per format.
	// Formats without an entry use grid.DefaultOrigin.
	Origins map[grid.Format]grid.Origin
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		PhixCutoff:  parser.PhixCutoff,
		MatchCutoff: parser.DefaultMatchCutoff,
	}
}

func (o Options) phixCutoff() time.Time {
	if o.PhixCutoff.IsZero() {
		return parser.PhixCutoff
	}
	return o.PhixCutoff
}

func (o Options) matchCutoff() float64 {
	if o.MatchCutoff <= 0 {
		return parser.DefaultMatchCutoff
	}
	return o.MatchCutoff
}

// Origin returns the scan origin for format.
func (o Options) Origin(format grid.Format) grid.Origin {
	if origin, ok := o.Origins[format]; ok {
		return origin
	}
	return grid.DefaultOrigin()
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
