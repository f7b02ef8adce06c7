package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug("counting", "concepts", 3)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "concepts=3")
}

func TestNew_Quiet(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestVerboseFromEnv(t *testing.T) {
	t.Setenv("BRANDRADAR_VERBOSE", "1")
	assert.True(t, VerboseFromEnv())

	t.Setenv("BRANDRADAR_VERBOSE", "")
	assert.False(t, VerboseFromEnv())
}
