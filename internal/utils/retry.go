package utils

import (
	"context"
	"time"
)

// Poll runs fn until it reports found, an error, the attempt budget runs
// out, or ctx is done. It waits interval between attempts but not after
// the last one. A nil error with found=false means the budget was
// exhausted without a hit.
func Poll(ctx context.Context, attempts int, interval time.Duration, fn func(ctx context.Context) (bool, error)) (bool, error) {
	for i := 0; i < attempts; i++ {
		found, err := fn(ctx)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(interval):
		}
	}
	return false, nil
}
