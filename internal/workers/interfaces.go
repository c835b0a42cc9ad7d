package workers

import "context"

// Worker is a background job that runs until ctx is done.
//
// Implementations are expected to block for the duration of their work.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
