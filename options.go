package ajisai

import (
	"io"

	"github.com/jcorbin/goajisai/internal/flushio"
)

// Option customizes an Engine at construction time.
type Option interface{ apply(eng *Engine) }

var defaultOptions = Options(
	withLoopLimit(10000),
	withMaxDepth(1024),
)

// Options combines 0 or more options into a single option, flattening any
// nested combinations, and eliding nil options.
func Options(opts ...Option) Option {
	all := make(options, 0, len(opts))
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type options []Option

func (opts options) apply(eng *Engine) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(eng)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(eng *Engine) {
	eng.logfn = logfn
}

type teeOption struct{ io.Writer }
type loopLimitOption int
type maxDepthOption int

func withTee(w io.Writer) teeOption           { return teeOption{w} }
func withLoopLimit(limit int) loopLimitOption { return loopLimitOption(limit) }
func withMaxDepth(depth int) maxDepthOption   { return maxDepthOption(depth) }

func (o teeOption) apply(eng *Engine) {
	eng.out.tee = flushio.Multi(eng.out.tee, flushio.NewWriteFlusher(o.Writer))
}

func (lim loopLimitOption) apply(eng *Engine) {
	eng.loopLimit = int(lim)
}

func (d maxDepthOption) apply(eng *Engine) {
	eng.maxDepth = int(d)
}
