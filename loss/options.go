package loss

import "log"

// config collects the knobs loss.New accepts, translated at
// construction time into docnav.Option values and controller.Model
// setup calls.
type config struct {
	chunkSize      int64
	maxChunks      int
	logger         *log.Logger
	follow         bool
	sourceEncoding string
}

// Option configures a pager instance, mirroring goripgrep's
// Find(pattern, path string, opts ...Option) functional-options shape.
type Option func(*config)

// WithChunkSize overrides docnav's default chunk size.
func WithChunkSize(size int64) Option {
	return func(c *config) { c.chunkSize = size }
}

// WithMaxChunks overrides docnav's bounded-LRU chunk limit.
func WithMaxChunks(max int) Option {
	return func(c *config) { c.maxChunks = max }
}

// WithLogger sets the diagnostic logger (spec.md §6's loss.log).
// Defaults to discarding output if never set.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithFollow starts the pager already in follow mode.
func WithFollow(enabled bool) Option {
	return func(c *config) { c.follow = enabled }
}

// WithSourceEncoding declares the input file's non-UTF-8 encoding (one
// of docnav.SupportedEncodings()); the file is transcoded to UTF-8 on
// open.
func WithSourceEncoding(name string) Option {
	return func(c *config) { c.sourceEncoding = name }
}
