// Package workers runs the server's background jobs. Each worker blocks in
// Run until its context is cancelled.
package workers

import "context"

// Worker is a background job.
//
// Run blocks until ctx is cancelled; failures of a single iteration are
// logged and do not stop the worker.
type Worker interface {
	Run(ctx context.Context)
}
