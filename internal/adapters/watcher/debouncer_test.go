package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildfy/internal/adapters/watcher"
)

func TestDebouncer_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/project/app.py")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/project/app.py"}, calls[0])
	})
}

func TestDebouncer_BurstIsCoalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/project/b.py")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/a.py")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/b.py")

		time.Sleep(90 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, calls, "window restarts on every add")

		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/project/a.py", "/project/b.py"}, calls[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) { calls++ })

		d.Add("/project/app.py")
		time.Sleep(150 * time.Millisecond)
		d.Add("/project/app.py")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 2, calls)
	})
}

func TestDebouncer_StopDiscardsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) { calls++ })

		d.Add("/project/app.py")
		d.Stop()

		time.Sleep(200 * time.Millisecond)
		synctest.Wait()

		assert.Zero(t, calls)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/project/app.py")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
	})
}
