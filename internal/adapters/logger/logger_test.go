package logger_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wsu/internal/adapters/logger"
)

func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestLogger_Info(t *testing.T) {
	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Info("some message", "package", "web")
	})
	assert.NoError(t, err)
	assert.Contains(t, output, "some message")
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "package=web")
}

func TestLogger_Error(t *testing.T) {
	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Error(os.ErrPermission)
	})
	assert.NoError(t, err)
	assert.Contains(t, output, "permission denied")
	assert.Contains(t, output, "ERROR")
}

func TestLogger_Warn(t *testing.T) {
	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Warn("some warning")
	})
	assert.NoError(t, err)
	assert.Contains(t, output, "some warning")
	assert.Contains(t, output, "WARN")
}

func TestLogger_With_PrefixesSubsequentRecords(t *testing.T) {
	output, err := captureStderr(func() {
		lg := logger.New().With("package", "api")
		lg.Info("starting build")
	})
	assert.NoError(t, err)
	assert.Contains(t, output, "package=api")
	assert.Contains(t, output, "starting build")
}

func TestNew(t *testing.T) {
	output, err := captureStderr(func() {
		lg := logger.New()
		assert.NotNil(t, lg)
		lg.Info("test initialization")
	})
	assert.NoError(t, err)
	assert.True(t, strings.Contains(output, "test initialization"))
}
