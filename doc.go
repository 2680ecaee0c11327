// Package managerchan is the composition root for Manager-chan's forgetful
// notes: a single-user, file-persisted task list whose stored items are not
// perfectly durable.
//
// Philosophy:
//
// Data loss is a feature here, not a bug. On each load, notes may be
// probabilistically forgotten as a function of their age, and very rarely
// the whole file is misplaced. On each render, text may pick up a small
// typo. Everything else is a perfectly ordinary note store.
//
// The core is split hexagonally: pkg/core holds the domain (the note
// entity, the forgetting model, the misspelling mutator, the view pipeline
// and the Store service), pkg/adapters/fs persists the collection as a
// single JSON file, and pkg/settings carries the versioned configuration.
//
// Usage:
//
//	app, err := managerchan.Open("~/.manager-chan",
//		managerchan.WithLogger(logger),
//		managerchan.WithDontForget(true), // for the cautious
//	)
//	status, mood := app.Store.Load(ctx)
package managerchan
