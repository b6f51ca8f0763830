package problem

import (
	"strings"

	"go.uber.org/zap"
)

// ChainEntry is one link of a collected causal chain: the code and trimmed
// message of an error object plus the stack frames captured when it was
// constructed.
type ChainEntry struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Trace   []Frame `json:"trace"`
}

// Chain returns the collected causal chain, ordered from the top-level error
// down to the root cause. It returns nil unless the descriptor wraps an
// error object and stack-trace exposure has been enabled — the chain is a
// diagnostic surface, never part of the client-facing detail.
func (d *Descriptor) Chain() []ChainEntry {
	if d.kind != sourceObject || !d.includeStackTrace {
		return nil
	}
	return d.collectChain()
}

// collectChain walks the cause links from the top-level error object until
// none remain, collecting one entry per link.
func (d *Descriptor) collectChain() []ChainEntry {
	var chain []ChainEntry
	for e := d.obj; e != nil; e = e.cause {
		chain = append(chain, ChainEntry{
			Code:    e.code,
			Message: strings.TrimSpace(e.message),
			Trace:   e.Frames(),
		})
	}
	return chain
}

// LogProblem logs a descriptor's resolved state with its context. The chain
// is included only when the descriptor exposes it.
func LogProblem(logger *zap.Logger, d *Descriptor) {
	fields := []zap.Field{
		zap.Int("status", d.Status()),
		zap.String("errors", d.Errors()),
	}
	if chain := d.Chain(); len(chain) > 0 {
		fields = append(fields, zap.Any("chain", chain))
	}
	logger.Error("api problem", fields...)
}
