// Package workers runs the application's background jobs.
//
// A Worker blocks in Run until its context is cancelled. Workers starts a
// set of them together and waits for all of them to stop.
package workers

import "context"

// Worker is implemented by every background job.
//
// Run must return promptly once ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
