package app

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go.trai.ch/wsu/internal/core/ports/mocks"
)

// TestAwaitShutdown_TerminatesAndExits exercises dev's signal handler
// directly: a SIGTERM on the channel must terminate every running child with
// grace and then exit the process (spec.md §5).
func TestAwaitShutdown_TerminatesAndExits(t *testing.T) {
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockSupervisor(ctrl)
	supervisor.EXPECT().TerminateAll(syscall.SIGTERM, devGrace)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	var exitCode int
	exited := make(chan struct{})
	original := exitFunc
	exitFunc = func(code int) {
		exitCode = code
		close(exited)
	}
	defer func() { exitFunc = original }()

	a := &App{supervisor: supervisor, logger: logger}

	sigCh := make(chan os.Signal, 1)
	sigCh <- syscall.SIGTERM

	done := make(chan struct{})
	go func() {
		a.awaitShutdown(sigCh)
		close(done)
	}()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("exitFunc was not called")
	}
	<-done
	assert.Equal(t, 0, exitCode)
}
