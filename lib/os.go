package lib

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// InterruptContext returns a context cancelled on SIGINT or SIGTERM, so long
// runs stop at the next sentence boundary instead of being killed mid-write.
func InterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(c)
		select {
		case <-c:
			log.Warn().Msg("process interrupted")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
