package loader

import "path/filepath"

// LocationKind selects the candidate path policy for a logical database
// filename. Every kind resolves to an ordered pair of paths where the second
// is the import (override) location, loaded after the base location.
type LocationKind int

const (
	// LocationNormal is a non-split database: the file lives directly under
	// the database root, with its override under the import directory.
	LocationNormal LocationKind = iota

	// LocationSplit is a variant-split database: the base file lives under
	// the variant subdirectory of the database root, with its override under
	// the import directory.
	LocationSplit

	// LocationConf is a configuration database: the file lives under the
	// configuration root, with its override under its fixed import
	// subdirectory.
	LocationConf
)

// String returns the string representation of the location kind.
func (k LocationKind) String() string {
	switch k {
	case LocationNormal:
		return "normal"
	case LocationSplit:
		return "split"
	case LocationConf:
		return "conf"
	default:
		return "unknown"
	}
}

// Locations maps a logical filename and a location kind to the ordered list of
// concrete candidate paths. The mapping is pure and deterministic: it performs
// no I/O and the base path always precedes the import/override path. An
// unknown kind yields nil, which Parse treats as a caller error.
func (db *Database) Locations(filename string, kind LocationKind) []string {
	switch kind {
	case LocationNormal:
		return []string{
			filepath.Join(db.databasePath, filename),
			filepath.Join(db.databasePath, db.importDir, filename),
		}
	case LocationSplit:
		return []string{
			filepath.Join(db.databasePath, db.variantDir, filename),
			filepath.Join(db.databasePath, db.importDir, filename),
		}
	case LocationConf:
		// The configuration tree keeps its overrides under a fixed "import"
		// subdirectory regardless of the database import directory name.
		return []string{
			filepath.Join(db.confPath, filename),
			filepath.Join(db.confPath, "import", filename),
		}
	}
	return nil
}
