package discovery

import (
	"context"
	"time"
)

// Browser finds robot vacuums on the local network.
type Browser interface {
	// Browse searches for vacuums until ctx is done. Each instance is
	// reported once; addresses seen on other interfaces are merged into it.
	// The channel is closed when ctx is done.
	Browse(ctx context.Context) (<-chan *Vacuum, error)

	// Find returns the vacuum with the given device id.
	Find(ctx context.Context, did string) (*Vacuum, error)

	// Stop cancels every running Browse.
	Stop()
}

// BrowserConfig selects where and how long to look for vacuums.
type BrowserConfig struct {
	// BrowseTimeout bounds a one-shot listing such as vacsync -discover.
	BrowseTimeout time.Duration

	// Interface names the network interface to query; empty queries all.
	Interface string

	// ModelPrefix filters instances by model. Empty accepts every miio
	// device.
	ModelPrefix string
}

// DefaultBrowserConfig looks for vacuums on every interface.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		BrowseTimeout: BrowseTimeout,
		ModelPrefix:   VacuumModelPrefix,
	}
}

// Collect browses until ctx is done and returns everything found.
func Collect(ctx context.Context, b Browser) ([]*Vacuum, error) {
	results, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}
	var out []*Vacuum
	for v := range results {
		out = append(out, v)
	}
	return out, nil
}
