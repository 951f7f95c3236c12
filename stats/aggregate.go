package stats

import (
	"bufio"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Summary describes one temperature group.
type Summary struct {
	T        float64
	DT       float64
	Count    int
	MeanAbsM float64 // mean of |M|/N
	StdAbsM  float64
	Binder   float64 // Binder cumulant of |M|/N
	MeanE    float64 // mean of E/N
	StdE     float64
	MeanIter float64
	StdIter  float64
}

// String formats s as one whitespace-separated line.
func (s Summary) String() string {
	fields := []string{
		formatFloat(s.T), formatFloat(s.DT), strconv.Itoa(s.Count),
		formatFloat(s.MeanAbsM), formatFloat(s.StdAbsM), formatFloat(s.Binder),
		formatFloat(s.MeanE), formatFloat(s.StdE),
		formatFloat(s.MeanIter), formatFloat(s.StdIter),
	}
	return strings.Join(fields, " ")
}

// Aggregator groups consecutive records with equal T.
type Aggregator struct {
	sites float64
	open  bool
	t, dt float64
	m     Moments
	e     Moments
	iter  Moments
}

// NewAggregator returns an aggregator normalising by sites (N = n²).
func NewAggregator(sites int) (*Aggregator, error) {
	if sites <= 0 {
		return nil, ErrBadSites
	}
	return &Aggregator{sites: float64(sites)}, nil
}

// Add folds r into the current group. When r starts a new temperature the
// finished group is returned with ok=true.
func (a *Aggregator) Add(r Record) (Summary, bool) {
	var (
		done Summary
		ok   bool
	)
	if a.open && r.T != a.t {
		done, ok = a.Flush()
	}
	if !a.open {
		a.open, a.t, a.dt = true, r.T, r.DT
	}
	a.m.Add(abs(float64(r.Magnetization)) / a.sites)
	a.e.Add(float64(r.Energy) / a.sites)
	a.iter.Add(float64(r.Iterations))
	return done, ok
}

// Flush closes the current group, if any.
func (a *Aggregator) Flush() (Summary, bool) {
	if !a.open {
		return Summary{}, false
	}
	s := Summary{
		T:        a.t,
		DT:       a.dt,
		Count:    a.m.Count(),
		MeanAbsM: a.m.Mean(),
		StdAbsM:  a.m.StdDev(),
		Binder:   a.m.Binder(),
		MeanE:    a.e.Mean(),
		StdE:     a.e.StdDev(),
		MeanIter: a.iter.Mean(),
		StdIter:  a.iter.StdDev(),
	}
	a.open = false
	a.m.Reset()
	a.e.Reset()
	a.iter.Reset()
	return s, true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Aggregate reads records from r and returns one Summary per group.
// Blank lines are skipped; a malformed line aborts with its line number.
func Aggregate(r io.Reader, sites int) ([]Summary, error) {
	agg, err := NewAggregator(sites)
	if err != nil {
		return nil, err
	}
	var out []Summary
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := ParseRecord(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if s, ok := agg.Add(rec); ok {
			out = append(out, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read records")
	}
	if s, ok := agg.Flush(); ok {
		out = append(out, s)
	}
	return out, nil
}

// SideFromFileName derives the lattice side from a data file named
// "<n>.<anything>", e.g. "64.txt" → 64.
func SideFromFileName(path string) (int, error) {
	name := filepath.Base(path)
	prefix, _, _ := strings.Cut(name, ".")
	n, err := strconv.Atoi(prefix)
	if err != nil || n <= 0 {
		return 0, errors.Wrapf(ErrBadSites, "cannot derive side from %q", name)
	}
	return n, nil
}
