// Package dberrors provides structured error types for yamldb.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: unreadable files and YAML syntax failures
//   - HeaderError: missing or malformed Header blocks, type mismatches
//   - VersionError: declared schema versions outside the supported window
//   - FieldError: missing or unparseable fields during typed extraction
//   - ConfigError: invalid loader configuration or arguments
//
// # Usage with errors.As
//
//	doc, err := db.Load("db/item_db.yml")
//	if err != nil {
//	    var verr *dberrors.VersionError
//	    if errors.As(err, &verr) {
//	        if verr.TooNew {
//	            // Handle a database file newer than this server
//	        }
//	    }
//	}
package dberrors
