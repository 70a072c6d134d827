package loader

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
	"go.yaml.in/yaml/v4"

	"github.com/dbforge/yamldb/dberrors"
)

// Database loads schema-versioned YAML database files on behalf of one
// consumer. A Database is constructed once with the schema type and version
// window the consumer is built against, and reused across Parse calls.
//
// The configuration is immutable after construction; the only mutable state
// is the most recently loaded document, which is replaced wholesale on every
// successful Load. A Database is not safe for concurrent use.
type Database struct {
	typeName       string
	version        uint16
	minimumVersion uint16

	databasePath string
	confPath     string
	variantDir   string
	importDir    string

	logger Logger

	// root is the last successfully loaded document. It is only assigned
	// after header verification succeeds, so a failed Load never exposes a
	// partially accepted document.
	root *Document
}

// VisitFunc is the caller-supplied per-entry callback invoked once for every
// defined entry under a document's Body. It returns whether the entry was
// successfully ingested. Visitors must not panic past the loader: entry-level
// faults should be reported via InvalidWarning and answered with false.
type VisitFunc func(entry *yaml.Node, source string) bool

// New creates a Database expecting documents of the given schema type.
// version is the schema version the consumer is built against and
// minimumVersion the oldest version it still accepts; documents declaring a
// version in between load with a staleness warning.
func New(typeName string, version, minimumVersion uint16, opts ...Option) (*Database, error) {
	if typeName == "" {
		return nil, &dberrors.ConfigError{Option: "type", Message: "database type must not be empty"}
	}
	if minimumVersion > version {
		return nil, &dberrors.ConfigError{
			Option:  "minimumVersion",
			Value:   minimumVersion,
			Message: fmt.Sprintf("minimum supported version exceeds current version %d", version),
		}
	}

	db := &Database{
		typeName:       typeName,
		version:        version,
		minimumVersion: minimumVersion,
		databasePath:   DefaultDatabasePath,
		confPath:       DefaultConfPath,
		variantDir:     DefaultVariantDir,
		importDir:      DefaultImportDir,
	}
	for _, opt := range opts {
		if err := opt(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Type returns the schema type this database expects.
func (db *Database) Type() string { return db.typeName }

// CurrentVersion returns the schema version the consumer is built against.
func (db *Database) CurrentVersion() uint16 { return db.version }

// MinimumVersion returns the oldest schema version still accepted.
func (db *Database) MinimumVersion() uint16 { return db.minimumVersion }

// log returns the configured logger, or a no-op logger if none is set.
func (db *Database) log() Logger {
	if db.logger != nil {
		return db.logger
	}
	return NopLogger{}
}

// Document is a successfully loaded and verified database file.
type Document struct {
	// SourcePath is the file path the document was read from.
	SourcePath string
	// SourceSize is the size of the source file in bytes.
	SourceSize int64
	// LoadTime is the time taken to read the source file.
	LoadTime time.Duration
	// ContentHash is the xxh3 hash of the raw file contents, usable for
	// change detection across reloads.
	ContentHash uint64
	// Version is the schema version declared in the document header.
	Version uint16

	root *yaml.Node
}

// Root returns the document's root node.
func (d *Document) Root() *yaml.Node {
	if d == nil {
		return nil
	}
	return d.root
}

// Body returns the document's Body entries in document order. A missing or
// non-sequence Body yields nil.
func (d *Document) Body() []*yaml.Node {
	if d == nil {
		return nil
	}
	body := unwrap(childValue(d.root, "Body"))
	if body == nil || body.Kind != yaml.SequenceNode {
		return nil
	}
	return body.Content
}

// VerifyCompatibility checks the document header against this database's
// expectations: the Header block must be present, its Type must equal the
// expected schema type, and its Version must be coercible to uint16 and fall
// inside the supported window. A version between the minimum supported and
// current version passes with a single staleness warning.
func (db *Database) VerifyCompatibility(root *yaml.Node) error {
	_, err := db.verifyCompatibility(root)
	return err
}

// verifyCompatibility reports the declared version alongside the check result
// so Load can record it on the Document.
func (db *Database) verifyCompatibility(root *yaml.Node) (uint16, error) {
	if !NodeExists(root, "Header") {
		return 0, &dberrors.HeaderError{Database: db.typeName, Field: "Header", Message: "no database header was found"}
	}

	header := childValue(root, "Header")

	typeNode := childValue(header, "Type")
	if typeNode == nil {
		return 0, &dberrors.HeaderError{Database: db.typeName, Field: "Type", Message: "no database type was found"}
	}

	var declaredType string
	if err := typeNode.Decode(&declaredType); err != nil {
		return 0, &dberrors.HeaderError{Database: db.typeName, Field: "Type", Message: "invalid database type", Cause: err}
	}
	if declaredType != db.typeName {
		return 0, &dberrors.HeaderError{Database: db.typeName, Field: "Type", Actual: declaredType, Message: "database type mismatch"}
	}

	var declaredVersion uint16
	if !db.AsUInt16(header, "Version", &declaredVersion) {
		return 0, &dberrors.HeaderError{Database: db.typeName, Field: "Version", Message: "invalid header version"}
	}

	if declaredVersion != db.version {
		switch {
		case declaredVersion > db.version:
			return 0, &dberrors.VersionError{
				Database: db.typeName,
				Version:  declaredVersion,
				Current:  db.version,
				Minimum:  db.minimumVersion,
				TooNew:   true,
			}
		case declaredVersion >= db.minimumVersion:
			db.log().Warn("database version is outdated and should be updated",
				"type", db.typeName,
				"version", declaredVersion,
				"current", db.version)
		default:
			return 0, &dberrors.VersionError{
				Database: db.typeName,
				Version:  declaredVersion,
				Current:  db.version,
				Minimum:  db.minimumVersion,
			}
		}
	}

	return declaredVersion, nil
}

// Load reads and parses the database file at path and verifies its header.
// On success the document replaces the stored root and is returned. On any
// failure the stored root is left untouched and a structured error from the
// dberrors package describes the fault, with source position when known.
func (db *Database) Load(path string) (*Document, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &dberrors.ParseError{Path: path, Message: "failed to read database file", Cause: err}
	}
	loadTime := time.Since(start)

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &dberrors.ParseError{
			Path:    path,
			Line:    yamlErrorLine(err),
			Message: "failed to parse database file",
			Cause:   err,
		}
	}

	version, err := db.verifyCompatibility(&root)
	if err != nil {
		return nil, fmt.Errorf("failed to verify compatibility with %s database file %q: %w", db.typeName, path, err)
	}

	doc := &Document{
		SourcePath:  path,
		SourceSize:  int64(len(data)),
		LoadTime:    loadTime,
		ContentHash: xxh3.Hash(data),
		Version:     version,
		root:        &root,
	}
	db.root = doc
	return doc, nil
}

// Root returns the most recently loaded document, or nil before the first
// successful Load.
func (db *Database) Root() *Document {
	return db.root
}

// Parse resolves filename to its candidate paths for the given location kind
// and loads each in order, invoking visit once per defined Body entry. The
// per-file count of successfully ingested entries is reported at info level.
//
// A Load failure on any candidate path fails the whole operation immediately;
// visitor failures on individual entries do not.
func (db *Database) Parse(filename string, kind LocationKind, visit VisitFunc) error {
	if visit == nil {
		return &dberrors.ConfigError{Option: "visit", Message: "no visitor was given"}
	}

	paths := db.Locations(filename, kind)
	if len(paths) == 0 {
		return &dberrors.ConfigError{Option: "kind", Value: kind, Message: "unknown database location kind"}
	}

	for _, path := range paths {
		doc, err := db.Load(path)
		if err != nil {
			return err
		}

		count := 0
		for _, entry := range doc.Body() {
			if entry == nil || entry.Kind == 0 {
				continue
			}
			if visit(entry, path) {
				count++
			}
		}

		db.log().Info("done reading database entries",
			"type", db.typeName,
			"count", count,
			"file", path)
	}

	return nil
}

// InvalidWarning reports a malformed entry without aborting the file. The
// node is serialized back to YAML and attached to the warning together with
// the source file and line, so visitors can surface exactly what they
// rejected. Extra attrs are appended as structured key-value pairs.
func (db *Database) InvalidWarning(msg string, node *yaml.Node, source string, attrs ...any) {
	rendered, err := yaml.Marshal(node)
	if err != nil {
		rendered = []byte("<unrenderable entry>")
	}
	attrs = append(attrs,
		"file", source,
		"line", nodeLine(node),
		"entry", strings.TrimRight(string(rendered), "\n"))
	db.log().Warn(msg, attrs...)
}

// yamlErrorLine extracts the 1-based line number a yaml error refers to.
// The yaml library only surfaces positions inside its error strings
// ("yaml: line 12: ..."), so this scans for the first "line N" token.
// Returns 0 when no position is present.
func yamlErrorLine(err error) int {
	msg := err.Error()
	idx := strings.Index(msg, "line ")
	if idx < 0 {
		return 0
	}
	n := 0
	found := false
	for _, r := range msg[idx+len("line "):] {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		found = true
	}
	if !found {
		return 0
	}
	return n
}
