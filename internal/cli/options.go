package cli

import (
	"time"

	"github.com/patbeagan1/is-test/internal/predicate"
)

// Options are the process-wide knobs. They come from flags placed before
// the family name; nothing is read from files.
type Options struct {
	Verbose       bool
	OnlineAddress string
	OnlineTimeout time.Duration
	PortTimeout   time.Duration
}

// DefaultOptions returns the defaults used when no global flag is given.
func DefaultOptions() Options {
	return Options{
		OnlineAddress: predicate.DefaultOnlineAddress,
		OnlineTimeout: predicate.DefaultOnlineTimeout,
		PortTimeout:   predicate.DefaultPortOpenTimeout,
	}
}
