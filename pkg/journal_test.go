package pkg

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string
	Paths []string
}

func TestJournal(t *testing.T) {
	t.Run("NewJournal creates file in dir", func(t *testing.T) {
		dir := t.TempDir()

		j, err := NewJournal[int](dir, false)
		require.NoError(t, err)
		defer j.Close()

		require.FileExists(t, j.Path())
		require.Contains(t, j.Path(), dir)
		require.Equal(t, 0, j.Len())
	})

	t.Run("Append and Range preserve order", func(t *testing.T) {
		j, err := NewJournal[entry](t.TempDir(), false)
		require.NoError(t, err)
		defer j.Close()

		require.NoError(t, j.Append(entry{Name: "a.c", Paths: []string{"a.o"}}))
		require.NoError(t, j.Append(entry{Name: "b.c"}))
		require.NoError(t, j.Append(entry{Name: "c.c", Paths: []string{"c.o", "lib.a"}}))
		require.Equal(t, 3, j.Len())

		var got []entry
		err = j.Range(func(index int, item entry) error {
			require.Equal(t, len(got), index)
			got = append(got, item)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []entry{
			{Name: "a.c", Paths: []string{"a.o"}},
			{Name: "b.c"},
			{Name: "c.c", Paths: []string{"c.o", "lib.a"}},
		}, got)
	})

	t.Run("Range stops on callback error", func(t *testing.T) {
		j, err := NewJournal[int](t.TempDir(), false)
		require.NoError(t, err)
		defer j.Close()

		for i := range 5 {
			require.NoError(t, j.Append(i))
		}

		stop := errors.New("stop")
		seen := 0
		err = j.Range(func(_ int, item int) error {
			seen++
			if item == 2 {
				return stop
			}
			return nil
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 3, seen)
	})

	t.Run("Close removes file unless kept", func(t *testing.T) {
		j, err := NewJournal[int](t.TempDir(), false)
		require.NoError(t, err)
		path := j.Path()
		require.NoError(t, j.Close())
		_, err = os.Stat(path)
		require.True(t, os.IsNotExist(err))

		kept, err := NewJournal[int](t.TempDir(), true)
		require.NoError(t, err)
		require.NoError(t, kept.Append(7))
		require.NoError(t, kept.Close())
		require.FileExists(t, kept.Path())
	})

	t.Run("Append after Close fails", func(t *testing.T) {
		j, err := NewJournal[int](t.TempDir(), false)
		require.NoError(t, err)
		require.NoError(t, j.Close())
		require.NoError(t, j.Close())
		require.Error(t, j.Append(1))
	})
}
