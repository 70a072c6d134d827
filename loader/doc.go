// Package loader loads, verifies, and iterates schema-versioned YAML database
// files.
//
// A [Database] is constructed once per consumer with the schema type it
// expects and the version window it supports. [Database.Parse] resolves a
// logical filename to its base and import/override paths, loads each file,
// verifies the Header block (declared Type and Version) against the
// consumer's expectations, and invokes a caller-supplied [VisitFunc] for
// every entry under Body.
//
// # Version tolerance
//
// A document declaring exactly the current version is accepted silently.
// Newer documents are rejected as unsupported. Documents at or above the
// minimum supported version but below the current one are accepted with a
// single staleness warning; anything older is rejected.
//
// # Typed field access
//
// Visitors read entry fields through the typed accessor pairs
// ([Database.AsBool]/[Database.AsBoolOr] and friends). Each pair shares one
// extract-or-default-or-fail contract: the required form fails on absent or
// uncoercible fields, while the defaulted form degrades to the supplied
// default, warning when a present value could not be parsed.
//
// All diagnostics flow through the configurable [Logger]; the loader never
// terminates the process itself.
package loader
