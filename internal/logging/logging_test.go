package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"":        logrus.InfoLevel,
		"info":    logrus.InfoLevel,
		"DEBUG":   logrus.DebugLevel,
		" warn ":  logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"verbose": logrus.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_FiltersAndFormats(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.WithField("t", 2.5).Info("stats")
	assert.Zero(t, buf.Len())

	log.WithField("t", 2.5).Warn("NG")
	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "msg=NG")
	assert.Contains(t, out, "t=2.5")
	assert.Regexp(t, `time="\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}"`, out)
}
