package loader

import (
	"go.yaml.in/yaml/v4"

	"github.com/dbforge/yamldb/dberrors"
	"github.com/dbforge/yamldb/internal/severity"
)

// Scalar is the closed set of primitive value types the field accessors
// support.
type Scalar interface {
	~bool |
		~int16 | ~uint16 |
		~int32 | ~uint32 |
		~int64 | ~uint64 |
		~float32 | ~float64 |
		~string
}

// extractField is the single extract-or-default-or-fail operation behind
// every typed accessor pair. It writes the named field of node, coerced to T,
// into out and returns whether extraction succeeded:
//
//   - field absent, default given: the default is written, success.
//   - field absent, no default: error report with the parent's line, failure;
//     out is left unwritten.
//   - field present but uncoercible, default given: warning with the field's
//     line, the default is written, success (degraded but continuing).
//   - field present but uncoercible, no default: error report with the
//     field's line, failure; out is left unwritten.
//   - nil out: critical-severity report, failure. This is a programmer
//     fault, not a data fault.
func extractField[T Scalar](db *Database, node *yaml.Node, name string, out, def *T) bool {
	log := db.log()

	if out == nil {
		err := &dberrors.FieldError{Field: name, Critical: true}
		log.Error(err.Error(), "severity", severity.SeverityCritical.String())
		return false
	}

	value := childValue(node, name)
	if value == nil {
		if def != nil {
			*out = *def
			return true
		}
		err := &dberrors.FieldError{Field: name, Line: nodeLine(node), Missing: true}
		log.Error(err.Error())
		return false
	}

	var parsed T
	if decodeErr := value.Decode(&parsed); decodeErr != nil {
		if def != nil {
			log.Warn("unable to parse field, using default value",
				"field", name,
				"line", value.Line)
			*out = *def
			return true
		}
		err := &dberrors.FieldError{Field: name, Line: value.Line, Cause: decodeErr}
		log.Error(err.Error())
		return false
	}

	*out = parsed
	return true
}

// AsBool extracts the named field of node as a bool into out. The field is
// required: absence or an uncoercible value fails the extraction and leaves
// out unwritten.
func (db *Database) AsBool(node *yaml.Node, name string, out *bool) bool {
	return extractField(db, node, name, out, nil)
}

// AsBoolOr extracts the named field of node as a bool into out, writing
// defaultValue when the field is absent or cannot be coerced. An uncoercible
// value emits a non-fatal warning before the default is applied.
func (db *Database) AsBoolOr(node *yaml.Node, name string, out *bool, defaultValue bool) bool {
	return extractField(db, node, name, out, &defaultValue)
}

// AsInt16 is the required int16 form of the accessor pair.
func (db *Database) AsInt16(node *yaml.Node, name string, out *int16) bool {
	return extractField(db, node, name, out, nil)
}

// AsInt16Or is the defaulted int16 form of the accessor pair.
func (db *Database) AsInt16Or(node *yaml.Node, name string, out *int16, defaultValue int16) bool {
	return extractField(db, node, name, out, &defaultValue)
}

// AsUInt16 is the required uint16 form of the accessor pair.
func (db *Database) AsUInt16(node *yaml.Node, name string, out *uint16) bool {
	return extractField(db, node, name, out, nil)
}

// AsUInt16Or is the defaulted uint16 form of the accessor pair.
func (db *Database) AsUInt16Or(node *yaml.Node, name string, out *uint16, defaultValue uint16) bool {
	return extractField(db, node, name, out, &defaultValue)
}

// AsInt32 is the required int32 form of the accessor pair.
func (db *Database) AsInt32(node *yaml.Node, name string, out *int32) bool {
	return extractField(db, node, name, out, nil)
}

// AsInt32Or is the defaulted int32 form of the accessor pair.
func (db *Database) AsInt32Or(node *yaml.Node, name string, out *int32, defaultValue int32) bool {
	return extractField(db, node, name, out, &defaultValue)
}

// AsUInt32 is the required uint32 form of the accessor pair.
func (db *Database) AsUInt32(node *yaml.Node, name string, out *uint32) bool {
	return extractField(db, node, name, out, nil)
}

// AsUInt32Or is the defaulted uint32 form of the accessor pair.
func (db *Database) AsUInt32Or(node *yaml.Node, name string, out *uint32, defaultValue uint32) bool {
	return extractField(db, node, name, out, &defaultValue)
}

// AsInt64 is the required int64 form of the accessor pair.
func (db *Database) AsInt64(node *yaml.Node, name string, out *int64) bool {
	return extractField(db, node, name, out, nil)
}

// AsInt64Or is the defaulted int64 form of the accessor pair.
func (db *Database) AsInt64Or(node *yaml.Node, name string, out *int64, defaultValue int64) bool {
	return extractField(db, node, name, out, &defaultValue)
}

// AsUInt64 is the required uint64 form of the accessor pair.
func (db *Database) AsUInt64(node *yaml.Node, name string, out *uint64) bool {
	return extractField(db, node, name, out, nil)
}

// AsUInt64Or is the defaulted uint64 form of the accessor pair.
func (db *Database) AsUInt64Or(node *yaml.Node, name string, out *uint64, defaultValue uint64) bool {
	return extractField(db, node, name, out, &defaultValue)
}

// AsFloat is the required float32 form of the accessor pair.
func (db *Database) AsFloat(node *yaml.Node, name string, out *float32) bool {
	return extractField(db, node, name, out, nil)
}

// AsFloatOr is the defaulted float32 form of the accessor pair.
func (db *Database) AsFloatOr(node *yaml.Node, name string, out *float32, defaultValue float32) bool {
	return extractField(db, node, name, out, &defaultValue)
}

// AsDouble is the required float64 form of the accessor pair.
func (db *Database) AsDouble(node *yaml.Node, name string, out *float64) bool {
	return extractField(db, node, name, out, nil)
}

// AsDoubleOr is the defaulted float64 form of the accessor pair.
func (db *Database) AsDoubleOr(node *yaml.Node, name string, out *float64, defaultValue float64) bool {
	return extractField(db, node, name, out, &defaultValue)
}

// AsString is the required string form of the accessor pair.
func (db *Database) AsString(node *yaml.Node, name string, out *string) bool {
	return extractField(db, node, name, out, nil)
}

// AsStringOr is the defaulted string form of the accessor pair.
func (db *Database) AsStringOr(node *yaml.Node, name string, out *string, defaultValue string) bool {
	return extractField(db, node, name, out, &defaultValue)
}
