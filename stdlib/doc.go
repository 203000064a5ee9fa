// Package stdlib provides the built-in host modules exposed to engine
// programs: string, bytes, math, time, tuple and types.
//
// # Modules and Entries
//
// A Module is an ordered set of named entries plus constants. Every entry
// carries a parameter descriptor tuple and a global signature in the form
// "module::function". A Registry resolves signatures to entries:
//
//	reg := stdlib.Default()
//	entry, err := reg.Lookup("string::length")
//	if err != nil {
//		return err
//	}
//	out, err := entry.Call(ctx, rt, arg)
//
// # Arguments
//
// Entries address their arguments by attribute name over the bound value,
// usually a tuple of named elements. The Arg helpers extract and type-check
// one attribute each; a missing or mistyped attribute produces a structured
// error naming the parameter.
//
// # Blocking and Async Entries
//
// Most entries compute synchronously inside one step. The time module also
// registers async entries: async_sleep yields Pending to the scheduler
// until its deadline passes, and sleep runs on a background goroutine
// through the adapter layer. Blocking entries such as sleep_millis hold the
// runtime guard for their full duration.
package stdlib
