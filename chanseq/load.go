package chanseq

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/parray"
)

// defaultBatch is the number of elements collected between two progress
// broadcasts.
const defaultBatch = 1024

// Progress is the message broadcast to subscribers while a load is
// running.
type Progress struct {
	// Collected is the number of elements drained from the channel so far.
	Collected int
	// Done is true for the final message of a load.
	Done bool
}

// Loader drains channels of T into sequences.
//
// A loader may be used for several loads, one at a time.
type Loader[T any] struct {
	cfg   parray.Config
	batch int
	cast  *caster.Caster // broadcaster for progress while loading
}

// NewLoader creates a loader producing sequences with the given
// configuration. A batch value of 0 selects a sensible default; batch
// controls how many elements are drained between progress broadcasts.
func NewLoader[T any](cfg parray.Config, batch int) (*Loader[T], error) {
	if _, err := parray.NewWith[T](cfg); err != nil {
		return nil, err
	}
	if batch <= 0 {
		batch = defaultBatch
	}
	return &Loader[T]{
		cfg:   cfg,
		batch: batch,
		cast:  caster.New(nil),
	}, nil
}

// Subscribe registers a listener for Progress messages until the loader is
// closed; ok is false when the loader has already been closed. The returned
// channel buffers one message. Intermediate progress messages are dropped
// for a subscriber whose buffer is full; the final Done message of a load
// waits until it can be delivered.
func (ld *Loader[T]) Subscribe() (chan interface{}, bool) {
	return ld.cast.Sub(nil, 1)
}

// Unsubscribe removes a listener registered with Subscribe.
func (ld *Loader[T]) Unsubscribe(ch chan interface{}) {
	ld.cast.Unsub(ch)
}

// Close shuts down the progress broadcaster and releases all subscriber
// channels. The loader must not be used afterwards.
func (ld *Loader[T]) Close() {
	ld.cast.Close()
}

// Collect drains ch until it is closed and returns a sequence holding the
// received elements in arrival order. Collection stops early when ctx is
// canceled, returning the context error and the partial sequence built so
// far.
func (ld *Loader[T]) Collect(ctx context.Context, ch <-chan T) (parray.Seq[T], error) {
	seq, err := parray.NewWith[T](ld.cfg)
	if err != nil {
		return parray.Seq[T]{}, err
	}
	collected := 0
	staged := make([]T, 0, ld.batch)
	flush := func() error {
		if len(staged) == 0 {
			return nil
		}
		batch, ferr := parray.FromSliceWith(ld.cfg, staged)
		if ferr != nil {
			return ferr
		}
		seq, ferr = seq.Concat(batch)
		if ferr != nil {
			return ferr
		}
		collected += len(staged)
		staged = staged[:0]
		ld.cast.TryPub(Progress{Collected: collected})
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			if ferr := flush(); ferr != nil {
				return seq, ferr
			}
			tracer().Infof("chanseq: load canceled after %d elements", collected)
			return seq, ctx.Err()
		case x, ok := <-ch:
			if !ok {
				if ferr := flush(); ferr != nil {
					return seq, ferr
				}
				// the final message must reach slow subscribers, so no TryPub here
				ld.cast.Pub(Progress{Collected: collected, Done: true})
				tracer().Debugf("chanseq: loaded %d elements", collected)
				return seq, nil
			}
			staged = append(staged, x)
			if len(staged) >= ld.batch {
				if ferr := flush(); ferr != nil {
					return seq, ferr
				}
			}
		}
	}
}
