// Package pagetracker counts page views in an external key-value store and
// serves the running total over HTTP.
//
// # Key Concepts
//
//   - [Tracker] increments a single named counter (by default [DefaultKey])
//     in a [store.Store]. It keeps no state of its own.
//   - [store.Store] is the counter backend. An in-memory store is used by
//     default; Redis, SQLite and tiered stores are available, and
//     [store.Lazy] defers building any of them until the first request.
//   - [Tracker.Handler] is the HTTP surface: GET / answers
//     "This page has been seen N times." or, when the store fails, logs the
//     error and answers 500 with [FailureMessage].
//
// # Quick Start
//
//	s, err := redis.Open(redis.DefaultURL)
//	if err != nil {
//		return err
//	}
//	tracker := pagetracker.New(
//		pagetracker.WithStore(s),
//		pagetracker.WithLogger(logger),
//	)
//	defer tracker.Close()
//
//	http.ListenAndServe("127.0.0.1:5000", tracker.Handler())
//
// See the [Tracker] documentation for the full API.
package pagetracker
