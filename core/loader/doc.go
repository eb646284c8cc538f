// Package loader registers HTTP features on the Fiber application.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order. LoadAll skips disabled features, logs
// each one it loads, and stops at the first Load error.
package loader
