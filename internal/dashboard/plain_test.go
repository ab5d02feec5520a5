package dashboard

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

const reportTitle = "=== System Health Dashboard ==="

// reportWriter cancels once it has seen n reports.
type reportWriter struct {
	buf    bytes.Buffer
	n      int
	cancel context.CancelFunc
}

func (w *reportWriter) Write(p []byte) (int, error) {
	n, err := w.buf.Write(p)
	if strings.Count(w.buf.String(), reportTitle) >= w.n {
		w.cancel()
	}
	return n, err
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunPlain_SingleReport(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &reportWriter{n: 1, cancel: cancel}
	p := &countingProvider{}
	err := RunPlain(ctx, w, p, sampler.NewCollector(testr.New(t)), time.Hour)
	require.NoError(t, err)

	out := w.buf.String()
	assert.Equal(t, 1, p.collects)
	assert.True(t, strings.HasPrefix(out, "\x1b[2J"), "screen is cleared first")
	assert.Contains(t, out, "Hostname:     testbox")
	assert.Contains(t, out, "Top Processes (of 2):")
	assert.Less(t, strings.Index(out, "postgres: writer"), strings.Index(out, "/sbin/init"))
}

func TestRunPlain_Repeats(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &reportWriter{n: 3, cancel: cancel}
	p := &countingProvider{}
	require.NoError(t, RunPlain(ctx, w, p, sampler.NewCollector(testr.New(t)), time.Millisecond))

	assert.GreaterOrEqual(t, p.collects, 3)
	assert.Equal(t, p.collects, strings.Count(w.buf.String(), reportTitle))
}

func TestRunPlain_WriteError(t *testing.T) {
	err := RunPlain(context.Background(), failingWriter{}, &countingProvider{}, sampler.NewCollector(testr.New(t)), time.Hour)
	assert.ErrorContains(t, err, "broken pipe")
}
