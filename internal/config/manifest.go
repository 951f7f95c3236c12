package config

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/proppwilson/sweep"
)

// Manifest records one sweep run: its id, timing, effective configuration
// and outcome.
type Manifest struct {
	RunID    string        `yaml:"run_id"`
	Started  time.Time     `yaml:"started"`
	Finished time.Time     `yaml:"finished,omitempty"`
	Tc       float64       `yaml:"tc"`
	Config   Config        `yaml:"config"`
	Result   *sweep.Result `yaml:"result,omitempty"`
	Error    string        `yaml:"error,omitempty"`
}

// NewManifest stamps a fresh run id and start time for c.
func NewManifest(c Config, now time.Time) *Manifest {
	return &Manifest{
		RunID:   uuid.NewString(),
		Started: now.UTC(),
		Tc:      sweep.Tc,
		Config:  c,
	}
}

// Finish records the outcome of the run.
func (m *Manifest) Finish(res sweep.Result, runErr error, now time.Time) {
	m.Finished = now.UTC()
	m.Result = &res
	if runErr != nil {
		m.Error = runErr.Error()
	}
}

// WriteFile writes m as YAML to path, replacing any existing file.
func (m *Manifest) WriteFile(path string) error {
	out, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "config: encode manifest")
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.Wrapf(err, "config: write manifest %s", path)
	}
	return nil
}

// ReadManifest decodes a manifest written by WriteFile.
func ReadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read manifest %s", path)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrapf(err, "config: decode manifest %s", path)
	}
	return &m, nil
}
