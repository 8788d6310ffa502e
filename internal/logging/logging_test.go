package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriters(&out, &errOut)

	logger.Info("scene ready")
	logger.Warnf("keyboard %s", "missing")
	logger.Error("boom")
	logger.Event("sell", "coins=25")

	assert.Contains(t, out.String(), "[carryloop-info] ")
	assert.Contains(t, out.String(), "scene ready")
	assert.Contains(t, out.String(), "[carryloop-warn] ")
	assert.Contains(t, out.String(), "keyboard missing")
	assert.Contains(t, out.String(), "[event:sell] coins=25")
	assert.NotContains(t, out.String(), "boom")

	assert.Contains(t, errOut.String(), "[carryloop-error] ")
	assert.Contains(t, errOut.String(), "boom")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Errorf("ignored %d", 1)
	})
}

func TestLoggerReportsCallerFile(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriters(&out, &errOut)

	logger.Info("plain")
	logger.Infof("formatted %d", 1)
	logger.Warnf("formatted %d", 2)
	logger.Event("carry", "entered")
	logger.Errorf("formatted %d", 3)

	for _, line := range strings.Split(strings.TrimSpace(out.String()+errOut.String()), "\n") {
		assert.Contains(t, line, "logging_test.go:", line)
		assert.NotContains(t, line, " logging.go:", line)
	}
}
