package uthread

import "github.com/krishkuchroo/xv6-finalproject/internal/ulog"

// Config parameterizes a Runtime. New replaces zero or nil fields with the
// defaults, so a partial Config works; DefaultConfig returns a fully filled
// one to override fields on, mirroring the Config-struct
// pattern used throughout the pack (e.g. scalytics-KafClaw's
// scheduler.Config / DefaultConfig()).
type Config struct {
	// MaxThreads is the fixed size of the thread table (spec.md §3).
	MaxThreads int
	// StackSize is the reserved-but-unused-for-execution stack footprint
	// recorded per TCB; see DESIGN.md "central translation problem".
	StackSize int
	// Logger receives scheduler and contract-violation diagnostics. Defaults
	// to a warn-level logger on stderr; pass ulog.Discard() to silence it.
	Logger ulog.Logger
}

// DefaultConfig returns the spec's defaults: 16 thread-table slots, 8 KiB
// stacks, warn-level logging to stderr.
func DefaultConfig() Config {
	return Config{
		MaxThreads: DefaultMaxThreads,
		StackSize:  DefaultStackSize,
		Logger:     ulog.Default(),
	}
}
