// Package keepalive pings an external URL on a fixed interval. It exists to
// keep free-tier hosts from idling the process out; it touches no session
// state and failures are only logged.
package keepalive

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
	logger   *zap.Logger
}

func NewPinger(url string, interval time.Duration, logger *zap.Logger) *Pinger {
	return &Pinger{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

// Run pings until the context is cancelled.
func (p *Pinger) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

func (p *Pinger) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		p.logger.Warn("keepalive request build failed", zap.Error(err))
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("keepalive ping failed", zap.Error(err))
		return
	}
	resp.Body.Close()
}
