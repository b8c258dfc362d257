package shell_test

import (
	"context"
	"runtime"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wsu/internal/adapters/shell"
	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/wsu/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func shCommand(script string) domain.Command {
	if runtime.GOOS == "windows" {
		return domain.Command{Program: "cmd", Args: []string{"/C", script}}
	}
	return domain.Command{Program: "/bin/sh", Args: []string{"-c", script}}
}

// linePrefix implements gomock.Matcher for a string argument starting with prefix.
type linePrefix struct {
	prefix string
}

func (m linePrefix) Matches(x interface{}) bool {
	s, ok := x.(string)
	return ok && strings.HasPrefix(s, m.prefix)
}

func (m linePrefix) String() string {
	return "has prefix " + m.prefix
}

func hasPrefix(prefix string) gomock.Matcher {
	return linePrefix{prefix: prefix}
}

func TestExecutor_Execute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockLogSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().WriteLine("[web]", 0, false, false, "Start: echo line1; echo line2"),
		sink.EXPECT().WriteLine("[web]", 0, false, false, "line1"),
		sink.EXPECT().WriteLine("[web]", 0, false, false, "line2"),
		sink.EXPECT().WriteLine("[web]", 0, false, false, hasPrefix("Done in ")),
	)

	executor := shell.NewExecutor(sink)
	cmd := shCommand("echo line1; echo line2")
	cmd.PackageName = "web"
	cmd.LogPrefix = "[web]"
	cmd.Script = "echo line1; echo line2"

	res := executor.Execute(context.Background(), cmd)
	assert.True(t, res.Success)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "web", res.PackageName)
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockLogSink(ctrl)
	sink.EXPECT().WriteLine(gomock.Any(), gomock.Any(), false, gomock.Any(), hasPrefix("Start: "))
	sink.EXPECT().WriteLine(gomock.Any(), gomock.Any(), true, gomock.Any(), "boom")
	sink.EXPECT().WriteLine(gomock.Any(), gomock.Any(), true, gomock.Any(), hasPrefix("Failed with exit code 7 in "))

	executor := shell.NewExecutor(sink)
	cmd := shCommand("echo boom 1>&2; exit 7")

	res := executor.Execute(context.Background(), cmd)
	assert.False(t, res.Success)
	assert.Equal(t, 7, res.ExitCode)
}

func TestExecutor_Execute_SuppressesBlankLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockLogSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().WriteLine(gomock.Any(), gomock.Any(), false, gomock.Any(), hasPrefix("Start: ")),
		sink.EXPECT().WriteLine(gomock.Any(), gomock.Any(), false, gomock.Any(), "line1"),
		sink.EXPECT().WriteLine(gomock.Any(), gomock.Any(), false, gomock.Any(), "line2"),
		sink.EXPECT().WriteLine(gomock.Any(), gomock.Any(), false, gomock.Any(), hasPrefix("Done in ")),
	)

	executor := shell.NewExecutor(sink)
	cmd := shCommand("echo line1; echo; echo; echo line2")

	res := executor.Execute(context.Background(), cmd)
	assert.True(t, res.Success)
}

func TestExecutor_Execute_SpawnErrorReportsExitCodeOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockLogSink(ctrl)
	sink.EXPECT().WriteLine(gomock.Any(), gomock.Any(), true, gomock.Any(), hasPrefix("Failed to start: "))

	executor := shell.NewExecutor(sink)
	cmd := domain.Command{Program: "wsu-e2e-nonexistent-binary-xyz"}

	res := executor.Execute(context.Background(), cmd)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.ExitCode)
}

func TestExecutor_Execute_ContextCancellationKillsChild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockLogSink(ctrl)
	sink.EXPECT().WriteLine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(sink)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan domain.CommandResult, 1)
	go func() {
		done <- executor.Execute(ctx, shCommand("sleep 30"))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case res := <-done:
		assert.False(t, res.Success)
	case <-time.After(5 * time.Second):
		t.Fatal("command did not exit after context cancellation")
	}
}

func TestExecutor_TerminateAll_GracefulThenForced(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("signal semantics differ on windows")
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockLogSink(ctrl)
	sink.EXPECT().WriteLine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(sink)

	done := make(chan domain.CommandResult, 1)
	go func() {
		done <- executor.Execute(context.Background(), shCommand("trap 'exit 0' TERM; sleep 30"))
	}()

	time.Sleep(100 * time.Millisecond)
	executor.TerminateAll(syscall.SIGTERM, 2*time.Second)

	select {
	case res := <-done:
		assert.Equal(t, 0, res.ExitCode)
	case <-time.After(5 * time.Second):
		t.Fatal("child did not terminate")
	}
}
