// Package cookbook holds the foodie domain model.
//
// A Cookbook is an ordered list of Recipe values keyed by recipe name. Each
// Recipe carries a description, a portion count, an optional label and a
// favorite flag, plus an ordered list of Ingredient values.
//
// The package has no I/O. Persistence lives in internal/store and data access
// (local or remote) in internal/access; both delegate to the operations here so
// the same errors surface regardless of where the cookbook is kept.
//
// # Errors
//
// Operations return the sentinel errors ErrDuplicate, ErrNotFound,
// ErrOutOfRange and ErrInvalidLabel (wrapped with context). Callers should test
// with errors.Is. Validation failures are ValidationError values whose message
// is suitable for showing directly to a user.
package cookbook
