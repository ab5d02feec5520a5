package dashboard

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"

	"github.com/Dicklesworthstone/sysdash/internal/sampler"
	"github.com/Dicklesworthstone/sysdash/internal/ui"
)

// RunPlain prints a fresh text report to w every interval, clearing the
// screen first, until ctx is done. It reads no input.
func RunPlain(ctx context.Context, w io.Writer, provider sampler.Provider, collector *sampler.Collector, interval time.Duration) error {
	out := termenv.NewOutput(w)
	for {
		out.ClearScreen()
		if _, err := io.WriteString(w, ui.RenderPlain(collector.Collect(provider))); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}
