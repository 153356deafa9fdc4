// Package workers provides a small aggregate for the application's
// background jobs. It defines the Worker interface and a Workers collection
// that starts every registered worker in one call.
package workers

// Worker is implemented by any background job. Run either blocks for the
// duration of the work or spawns goroutines internally and returns.
type Worker interface {
	Run()
}
