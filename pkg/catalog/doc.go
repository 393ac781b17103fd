// Package catalog provides the shared data model for packpath.
//
// The catalog describes a fixed, versioned marketing-asset directory
// hierarchy declaratively: packs, model codes, folder display names, and
// the ordered routing rules that map a filename onto a folder path.
//
// # Snapshot
//
// All catalog data is aggregated into a [Snapshot]. A Snapshot is built once
// by the configuration loader and treated as immutable afterwards: the
// resolution engine receives it by value and never mutates it, so any number
// of resolutions may run concurrently against the same Snapshot. Reloading
// configuration produces a fresh Snapshot; in-flight resolutions keep the
// one they started with.
//
// # Rules
//
// Rules are ordered: the slice index is the priority, and the first rule
// whose predicate holds wins. Authors must order rules from most to least
// specific — two rules whose predicates can both hold for the same filename
// are an authoring mistake, not a runtime error.
//
// # Predicates
//
// A rule's predicate is a [Predicate]: a leaf [Clause] (all declared
// conditions must hold), an optional anyOf group of clauses (at least one
// must hold), and an optional model-code requirement. This keeps predicate
// evaluation exhaustive over a closed set of condition kinds instead of an
// open-ended field bag.
package catalog
