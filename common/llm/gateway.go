package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"reqwise.app/intake/common/logger"
)

// Completer is the call surface exposed to the driver and extractor.
// *Gateway implements it; tests substitute fakes.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Gateway fans one logical completion across an ordered list of backends.
// The first backend (Primary) is always attempted first; on any failure —
// missing credential, transport error, timeout — the gateway logs a warning
// and attempts the next backend. Attempts are strictly sequential and each
// backend gets exactly one attempt per call.
type Gateway struct {
	providers      []Provider
	attemptTimeout time.Duration
}

// NewGateway builds a Gateway over providers in fallback order. A positive
// attemptTimeout bounds each backend attempt so the fallback sequence
// completes in bounded time; zero disables the per-attempt deadline.
func NewGateway(attemptTimeout time.Duration, providers ...Provider) *Gateway {
	return &Gateway{
		providers:      providers,
		attemptTimeout: attemptTimeout,
	}
}

// Complete attempts each backend in order and returns the first success.
// When every backend fails, the returned error embeds each backend's failure
// message, e.g. "Both providers failed. Primary: <msg>, Secondary: <msg>".
func (g *Gateway) Complete(ctx context.Context, req Request) (string, error) {
	if len(g.providers) == 0 {
		return "", fmt.Errorf("no LLM providers configured")
	}

	failures := make([]string, 0, len(g.providers))

	for i, provider := range g.providers {
		text, err := g.attempt(ctx, provider, req)
		if err == nil {
			return text, nil
		}

		slog.WarnContext(ctx, "llm backend failed, falling back",
			"backend", provider.Name(),
			"position", positionName(i),
			"error", err)

		failures = append(failures, fmt.Sprintf("%s: %s", positionName(i), err.Error()))
	}

	prefix := "All providers failed."
	if len(g.providers) == 2 {
		prefix = "Both providers failed."
	}
	return "", fmt.Errorf("%s %s", prefix, strings.Join(failures, ", "))
}

func (g *Gateway) attempt(ctx context.Context, provider Provider, req Request) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Backend: logger.Ptr(provider.Name())})
	if g.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.attemptTimeout)
		defer cancel()
	}
	return provider.Complete(ctx, req)
}

func positionName(i int) string {
	switch i {
	case 0:
		return "Primary"
	case 1:
		return "Secondary"
	default:
		return fmt.Sprintf("Fallback%d", i)
	}
}
