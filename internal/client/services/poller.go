package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/photokeeper/internal/client/session"
	"github.com/dmitrijs2005/photokeeper/internal/logging"
)

// Poller refreshes the record list on a fixed interval so records whose
// server-side tag extraction has finished become visible without user
// action. The interval trades latency for simplicity; a push channel would
// remove the guess but is out of scope.
//
// Ticks never stack: LibraryService.Refresh is single-flight, so a tick
// firing while a slow refresh is still pending is coalesced.
type Poller struct {
	library  LibraryService
	session  *session.Session
	interval time.Duration
	log      logging.Logger
}

func NewPoller(library LibraryService, sess *session.Session, interval time.Duration, log logging.Logger) *Poller {
	return &Poller{library: library, session: sess, interval: interval, log: log}
}

// Run blocks until ctx is canceled. Intended to be started as a goroutine
// next to the REPL.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, ok := p.session.Token(); !ok {
				continue
			}

			if err := p.library.Refresh(ctx); err != nil {
				// Logged, not surfaced: the next tick (or a user-triggered
				// refresh) gets another chance, and a 401 already cleared
				// the session through the transport.
				p.log.Warn(ctx, "background refresh failed", "error", err)
			}

		case <-ctx.Done():
			return
		}
	}
}
