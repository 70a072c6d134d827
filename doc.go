// Package yamldb provides a schema-versioned loader for hierarchical YAML
// database files.
//
// A database file carries a Header block declaring its schema type and version,
// followed by a Body sequence of data entries. The loader verifies the header
// against the consuming database's expectations, applies a version tolerance
// policy (exact match, tolerated-but-stale, or rejected), resolves base and
// import/override file locations, and hands every body entry to a
// caller-supplied visitor together with typed, default-aware field accessors.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - loader: load, verify, and iterate database documents
//   - dberrors: structured error types for programmatic error handling
//
// # Quick Start
//
// Load a database file and ingest its entries:
//
//	import "github.com/dbforge/yamldb/loader"
//
//	db, err := loader.New("ITEM_DB", 3, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = db.Parse("item_db.yml", loader.LocationSplit, func(entry *yaml.Node, source string) bool {
//		var id uint32
//		if !db.AsUInt32(entry, "Id", &id) {
//			db.InvalidWarning("item entry is missing its id", entry, source)
//			return false
//		}
//		// build the in-memory record ...
//		return true
//	})
//
// The second resolved location for every logical filename is the import
// (override) path, loaded after the base path, so visitors conventionally treat
// later entries as overriding earlier ones with the same key.
package yamldb
