// Package todo models a single task item as an immutable aggregate: an opaque
// ID, validated Title, optional Description, lifecycle Status, Priority, and
// timestamps. Transitions (Complete, UpdateTitle, SetPriority) never mutate in
// place; each returns a new snapshot with UpdatedAt refreshed.
//
// The package deliberately encodes no state machine: any Status may follow any
// Status, and Complete is unconditional even on a cancelled or already
// completed todo. Transition legality, if a consumer needs it, is the
// consumer's policy, not this model's.
package todo
