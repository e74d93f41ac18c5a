package locate

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"spotfinder/internal/frame"
)

// BatchOptions configures concurrent frame-sequence localization.
type BatchOptions struct {
	// Workers is the size of the worker pool. Zero or negative means one
	// worker per CPU core.
	Workers int

	// Logger, if set, receives per-frame progress events. The core never
	// logs; this is batch-level observability only.
	Logger *zerolog.Logger
}

// Batch applies Locate to every frame of a sequence concurrently and returns
// the concatenated features with the Frame index set to each frame's position
// in the input. Frames are independent and processed by a fixed-size worker
// pool; completion order is non-deterministic, but results are reassembled in
// input order, so the frame column is monotonically non-decreasing and each
// per-frame subset equals the corresponding single-frame Locate call.
//
// Cancelling the context stops dispatching new frames; in-flight frames
// complete, the partial result is discarded and ctx.Err() is returned.
func Batch(ctx context.Context, frames []*frame.Frame, p Params, opts BatchOptions) ([]Feature, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid localization parameters: %w", err)
	}
	for i, f := range frames {
		if f.Empty() {
			return nil, fmt.Errorf("empty frame at index %d", i)
		}
	}
	if len(frames) == 0 {
		return nil, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(frames) {
		workers = len(frames)
	}

	jobs := make(chan int)
	perFrame := make([][]Feature, len(frames))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Parameters were validated above, and empty frames
				// rejected, so Locate cannot fail here.
				feats, _ := Locate(frames[i], p)
				perFrame[i] = feats
				if opts.Logger != nil {
					opts.Logger.Debug().
						Int("frame", i).
						Int("features", len(feats)).
						Msg("frame localized")
				}
			}
		}()
	}

dispatch:
	for i := range frames {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var total int
	for _, feats := range perFrame {
		total += len(feats)
	}
	all := make([]Feature, 0, total)
	for i, feats := range perFrame {
		for _, ft := range feats {
			ft.Frame = i
			all = append(all, ft)
		}
	}
	return all, nil
}
