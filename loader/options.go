package loader

import (
	"github.com/dbforge/yamldb/dberrors"
)

// Default directory layout. The database and configuration roots are relative
// to the process working directory unless overridden.
const (
	// DefaultDatabasePath is the default database root directory.
	DefaultDatabasePath = "db"
	// DefaultConfPath is the default configuration root directory.
	DefaultConfPath = "conf"
	// DefaultVariantDir is the default variant subdirectory for split databases.
	DefaultVariantDir = "re"
	// DefaultImportDir is the default import/override subdirectory.
	DefaultImportDir = "import"
)

// Option is a function that configures a Database during construction.
type Option func(*Database) error

// WithDatabasePath sets the database root directory used by the normal and
// split location kinds.
func WithDatabasePath(dir string) Option {
	return func(db *Database) error {
		if dir == "" {
			return &dberrors.ConfigError{Option: "databasePath", Message: "directory must not be empty"}
		}
		db.databasePath = dir
		return nil
	}
}

// WithConfPath sets the configuration root directory used by the conf
// location kind.
func WithConfPath(dir string) Option {
	return func(db *Database) error {
		if dir == "" {
			return &dberrors.ConfigError{Option: "confPath", Message: "directory must not be empty"}
		}
		db.confPath = dir
		return nil
	}
}

// WithVariantDir sets the variant subdirectory used by the split location
// kind (e.g., "re" or "pre-re").
func WithVariantDir(name string) Option {
	return func(db *Database) error {
		if name == "" {
			return &dberrors.ConfigError{Option: "variantDir", Message: "directory must not be empty"}
		}
		db.variantDir = name
		return nil
	}
}

// WithImportDir sets the import/override subdirectory under the database root.
func WithImportDir(name string) Option {
	return func(db *Database) error {
		if name == "" {
			return &dberrors.ConfigError{Option: "importDir", Message: "directory must not be empty"}
		}
		db.importDir = name
		return nil
	}
}

// WithLogger sets the diagnostics logger. A nil logger disables diagnostics
// (the default).
func WithLogger(logger Logger) Option {
	return func(db *Database) error {
		db.logger = logger
		return nil
	}
}
