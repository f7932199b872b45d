// Package schema maps schema-description field types to GraphQL type
// annotations.
package schema

import (
	"fmt"
	"strings"

	oerrors "github.com/uskit/cli/internal/errors"
)

// Kind is the closed set of recognized schema field kinds.
type Kind int

const (
	// KindUnknown is returned for types outside the recognized set.
	KindUnknown Kind = iota
	KindBoolean
	KindID
	KindInt
	KindFloat
	KindString
	KindDate
	KindDateTime
	KindTime
)

// String returns the GraphQL type token for the kind.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindID:
		return "ID"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindDate:
		return "Date"
	case KindDateTime:
		return "DateTime"
	case KindTime:
		return "Time"
	default:
		return ""
	}
}

// classifications is ordered; the first match wins. DateTime precedes Time
// so that suffix matching cannot misread "DateTime" as "Time".
var classifications = []struct {
	suffix string
	kind   Kind
}{
	{"Boolean", KindBoolean},
	{"ID", KindID},
	{"Int", KindInt},
	{"Float", KindFloat},
	{"String", KindString},
	{"DateTime", KindDateTime},
	{"Date", KindDate},
	{"Time", KindTime},
}

// Classify maps a schema type name to its Kind. Suffix matching covers
// subclassed types: "SchemaInt" classifies as Int the same way a subclass
// of Int would in the schema-description library.
func Classify(typeName string) Kind {
	for _, c := range classifications {
		if typeName == c.suffix || strings.HasSuffix(typeName, c.suffix) {
			return c.kind
		}
	}
	return KindUnknown
}

// Field is a schema field as seen by the mapper.
type Field struct {
	// Kind is the classified field kind.
	Kind Kind

	// Optional marks the field as nullable.
	Optional bool
}

// MapFieldType returns the GraphQL annotation for a field. Outside update
// operations, required fields carry the non-null marker. Unknown kinds are
// an error rather than the silent empty string the original produced.
func MapFieldType(f Field, isUpdate bool) (string, error) {
	if f.Kind == KindUnknown {
		return "", oerrors.Wrap(oerrors.ErrValidation, "unrecognized schema field kind")
	}

	token := f.Kind.String()
	if !isUpdate && !f.Optional {
		token += "!"
	}
	return token, nil
}

// MapFieldTypeName classifies a raw type name and maps it in one step.
func MapFieldTypeName(typeName string, optional, isUpdate bool) (string, error) {
	kind := Classify(typeName)
	if kind == KindUnknown {
		return "", oerrors.Wrap(oerrors.ErrValidation,
			fmt.Sprintf("unrecognized schema field type %q", typeName))
	}
	return MapFieldType(Field{Kind: kind, Optional: optional}, isUpdate)
}
