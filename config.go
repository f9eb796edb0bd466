package parray

import "fmt"

const (
	// DefaultLeafCap is the default maximum number of elements per leaf.
	// Larger caps make the tree shallower, favoring reads over writes.
	DefaultLeafCap = 10

	// rebalanceRatio is the K in the imbalance test
	// max(sL,sR) > K*min(sL,sR) + C, with C being the leaf cap.
	rebalanceRatio = 3
)

// Ownership selects the sharing primitive used for interior nodes.
type Ownership int8

const (
	// Shared maintains node reference counts atomically. Handles may be
	// cloned and used from multiple goroutines.
	Shared Ownership = iota
	// Local maintains plain reference counts. All handles of a sequence
	// family must stay on a single goroutine.
	Local
)

func (o Ownership) String() string {
	switch o {
	case Shared:
		return "shared"
	case Local:
		return "local"
	}
	return fmt.Sprintf("ownership(%d)", int8(o))
}

// Config configures a sequence at construction time.
//
// The zero value is valid and selects the defaults: leaf cap 10,
// auto-rebalance enabled, Shared ownership.
type Config struct {
	// LeafCap is the maximum number of elements per leaf. Zero selects
	// DefaultLeafCap; explicit values must be at least 2.
	LeafCap int
	// Ownership selects the sharing discipline for interior nodes.
	Ownership Ownership
	// DisableAutoRebalance turns off the root balance check performed
	// after each mutation. Callers disabling it on hot paths should call
	// Rebalance explicitly from time to time.
	DisableAutoRebalance bool
}

func (cfg Config) normalized() Config {
	if cfg.LeafCap == 0 {
		cfg.LeafCap = DefaultLeafCap
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.LeafCap != 0 && cfg.LeafCap < 2 {
		return fmt.Errorf("%w: leaf cap %d too small (minimum is 2)", ErrInvalidConfig, cfg.LeafCap)
	}
	if cfg.Ownership != Shared && cfg.Ownership != Local {
		return fmt.Errorf("%w: unknown ownership discipline %d", ErrInvalidConfig, cfg.Ownership)
	}
	return nil
}
