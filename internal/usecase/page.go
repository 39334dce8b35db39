package usecase

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// maxSectionFanout bounds concurrent upstream calls made for one page.
const maxSectionFanout = 5

// newSectionPool fans out the sections of one page. The first failing
// required section cancels the rest and is the error Wait returns.
func newSectionPool(ctx context.Context) *pool.ContextPool {
	return pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(maxSectionFanout)
}
