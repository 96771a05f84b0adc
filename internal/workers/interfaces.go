// Package workers runs the background jobs of the server.
//
// Every job implements [Worker]; [Workers] starts them together and waits
// until all of them return after the context is cancelled.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
