package stats

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors.
var (
	// ErrMalformedRecord indicates a line that is not "t dt k m e".
	ErrMalformedRecord = errors.New("stats: malformed record")
	// ErrBadSites indicates a non-positive or underivable site count.
	ErrBadSites = errors.New("stats: site count must be positive")
)

// Record is one successful sample at temperature T = Tc + DT.
type Record struct {
	T             float64
	DT            float64
	Iterations    int
	Magnetization int
	Energy        int
}

// String formats r as a whitespace-separated line without trailing newline.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString(formatFloat(r.T))
	b.WriteByte(' ')
	b.WriteString(formatFloat(r.DT))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(r.Iterations))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(r.Magnetization))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(r.Energy))
	return b.String()
}

// formatFloat writes the shortest decimal that round-trips, never in
// exponent form.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseRecord parses one line. Fields are separated by any whitespace;
// extra trailing fields are ignored.
func ParseRecord(line string) (Record, error) {
	f := strings.Fields(line)
	if len(f) < 5 {
		return Record{}, errors.Wrapf(ErrMalformedRecord, "want 5 fields, got %d", len(f))
	}
	var (
		r   Record
		err error
	)
	if r.T, err = strconv.ParseFloat(f[0], 64); err != nil {
		return Record{}, errors.Wrapf(ErrMalformedRecord, "t: %v", err)
	}
	if r.DT, err = strconv.ParseFloat(f[1], 64); err != nil {
		return Record{}, errors.Wrapf(ErrMalformedRecord, "dt: %v", err)
	}
	if r.Iterations, err = strconv.Atoi(f[2]); err != nil {
		return Record{}, errors.Wrapf(ErrMalformedRecord, "iterations: %v", err)
	}
	if r.Magnetization, err = strconv.Atoi(f[3]); err != nil {
		return Record{}, errors.Wrapf(ErrMalformedRecord, "magnetization: %v", err)
	}
	if r.Energy, err = strconv.Atoi(f[4]); err != nil {
		return Record{}, errors.Wrapf(ErrMalformedRecord, "energy: %v", err)
	}
	return r, nil
}
