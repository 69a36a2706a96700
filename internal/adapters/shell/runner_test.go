//go:build !windows

package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildfy/internal/adapters/shell"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T, opts ...shell.Option) *shell.Runner {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return shell.NewRunner(logger, opts...)
}

func sh(script string) domain.CommandLine {
	return domain.CommandLine{Tool: []string{"sh", "-c"}, Args: []string{script}}
}

func TestRunner_MergesStdoutAndStderrInOrder(t *testing.T) {
	runner := newRunner(t)

	proc, err := runner.Start(context.Background(), sh("echo one; echo two 1>&2; echo three"), t.TempDir())
	require.NoError(t, err)

	lines := slices.Collect(proc.Lines())
	code, err := proc.Wait()

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestRunner_StripsCarriageReturn(t *testing.T) {
	runner := newRunner(t)

	proc, err := runner.Start(context.Background(), sh(`printf 'a\r\nb\r\n'`), t.TempDir())
	require.NoError(t, err)

	lines := slices.Collect(proc.Lines())
	_, err = proc.Wait()

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestRunner_TrailingPartialLine(t *testing.T) {
	runner := newRunner(t)

	proc, err := runner.Start(context.Background(), sh("printf part1; sleep 0.1; printf part2"), t.TempDir())
	require.NoError(t, err)

	lines := slices.Collect(proc.Lines())
	_, err = proc.Wait()

	require.NoError(t, err)
	assert.Equal(t, []string{"part1part2"}, lines)
}

func TestRunner_LongLineIsNotTruncated(t *testing.T) {
	runner := newRunner(t)

	script := "head -c 2000000 /dev/zero | tr '\\0' a; echo; echo after"
	proc, err := runner.Start(context.Background(), sh(script), t.TempDir())
	require.NoError(t, err)

	lines := slices.Collect(proc.Lines())
	code, err := proc.Wait()

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 2000000)
	assert.Equal(t, "after", lines[1])
}

func TestRunner_StoppingEarlyDrainsOutput(t *testing.T) {
	runner := newRunner(t)

	script := "echo first; head -c 2000000 /dev/zero | tr '\\0' a; echo; exit 5"
	proc, err := runner.Start(context.Background(), sh(script), t.TempDir())
	require.NoError(t, err)

	for line := range proc.Lines() {
		assert.Equal(t, "first", line)
		break
	}

	done := make(chan int, 1)
	go func() {
		code, _ := proc.Wait()
		done <- code
	}()

	select {
	case code := <-done:
		assert.Equal(t, 5, code)
	case <-time.After(10 * time.Second):
		t.Fatal("Wait blocked on unread output")
	}
}

func TestRunner_NonZeroExitIsNotAnError(t *testing.T) {
	runner := newRunner(t)

	proc, err := runner.Start(context.Background(), sh("echo failing; exit 2"), t.TempDir())
	require.NoError(t, err)

	lines := slices.Collect(proc.Lines())
	code, err := proc.Wait()

	require.NoError(t, err)
	assert.Equal(t, 2, code)
	assert.Equal(t, []string{"failing"}, lines)
}

func TestRunner_WorkingDirectory(t *testing.T) {
	runner := newRunner(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), nil, 0o600))

	proc, err := runner.Start(context.Background(), sh("ls"), dir)
	require.NoError(t, err)

	lines := slices.Collect(proc.Lines())
	_, err = proc.Wait()

	require.NoError(t, err)
	assert.Contains(t, lines, "marker.txt")
}

func TestRunner_ToolNotFound(t *testing.T) {
	runner := newRunner(t)

	cmd := domain.CommandLine{Tool: []string{"buildfy-definitely-missing-python"}, Args: []string{"app.py"}}
	proc, err := runner.Start(context.Background(), cmd, t.TempDir())

	require.ErrorIs(t, err, domain.ErrToolNotFound)
	assert.Nil(t, proc)
}

func TestRunner_EmptyCommand(t *testing.T) {
	runner := newRunner(t)

	_, err := runner.Start(context.Background(), domain.CommandLine{}, t.TempDir())

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrProcessStartFailed.Error())
}

func TestRunner_WaitWithoutReading(t *testing.T) {
	runner := newRunner(t)

	proc, err := runner.Start(context.Background(), sh("exit 3"), t.TempDir())
	require.NoError(t, err)

	code, err := proc.Wait()
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestRunner_PTY(t *testing.T) {
	runner := newRunner(t, shell.WithPTY(true))

	proc, err := runner.Start(context.Background(), sh("echo from-pty; exit 4"), t.TempDir())
	require.NoError(t, err)

	lines := slices.Collect(proc.Lines())
	code, err := proc.Wait()

	require.NoError(t, err)
	assert.Equal(t, 4, code)
	assert.Contains(t, lines, "from-pty")
}
