package sink

import (
	stdErrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	ansierrors "github.com/alexisbeaulieu97/ansikit/pkg/errors"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, stdErrors.New("disk full")
}

func TestCaptureRecordsAndResets(t *testing.T) {
	t.Parallel()

	c := NewCapture("stdout")
	c.Init()

	_, err := c.Write([]byte("Hello"))
	require.NoError(t, err)
	_, err = c.Write([]byte("!\n"))
	require.NoError(t, err)
	require.Equal(t, "Hello!\n", c.Contents())

	c.Reset()
	require.Equal(t, "", c.Contents())
	require.Equal(t, "stdout", c.Name())
}

func TestStreamWrapsWriteFailures(t *testing.T) {
	t.Parallel()

	s := NewStream("stderr", failingWriter{})
	_, err := s.Write([]byte("x"))

	var writeErr *ansierrors.WriteError
	require.ErrorAs(t, err, &writeErr)
	require.Equal(t, "stderr", writeErr.Target)
	require.Contains(t, err.Error(), "disk full")
}

func TestStdStreamsExposeFiles(t *testing.T) {
	t.Parallel()

	require.Equal(t, os.Stdout, Stdout().File())
	require.Equal(t, os.Stderr, Stderr().File())
	require.Nil(t, NewStream("buf", failingWriter{}).File())
}
