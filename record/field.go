// Package record turns decoded parquet rows into display-ready records.
//
// A record is a Row: a set of Fields keyed by column name, each carrying the
// text that will be printed for it. Rows are produced by Materialize, which
// walks the row groups of a file and stops after a fixed number of rows.
package record

import "strconv"

// RowFieldName is the reserved name of the synthetic row-ordinal field.
// Schema columns are assumed not to use it; if one does, the ordinal wins.
const RowFieldName = "Row"

// FieldKind tells a schema-derived field from the synthetic ordinal.
type FieldKind uint8

const (
	// SchemaField is a value decoded from a parquet column.
	SchemaField FieldKind = iota
	// OrdinalField is the 1-based position of the row in the file.
	OrdinalField
)

func (k FieldKind) String() string {
	switch k {
	case SchemaField:
		return "schema"
	case OrdinalField:
		return "ordinal"
	default:
		return "FieldKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Field is a named, already formatted value.
type Field struct {
	kind FieldKind
	name string
	text string
}

// NewSchemaField returns a field holding the formatted value of a column.
func NewSchemaField(name, text string) Field {
	return Field{kind: SchemaField, name: name, text: text}
}

// NewOrdinalField returns the row-ordinal field for the n-th row.
func NewOrdinalField(n int) Field {
	return Field{kind: OrdinalField, name: RowFieldName, text: strconv.Itoa(n)}
}

// Kind reports whether the field came from a column or is the row ordinal.
func (f Field) Kind() FieldKind { return f.kind }

// Name returns the column name, or RowFieldName for the ordinal.
func (f Field) Name() string { return f.name }

// String returns the display text of the field.
func (f Field) String() string { return f.text }

// Row is one materialized record, keyed by field name.
type Row struct {
	fields map[string]Field
}

// NewRow builds a Row from fields. When two fields share a name the later
// one is kept.
func NewRow(fields ...Field) Row {
	m := make(map[string]Field, len(fields))
	for _, f := range fields {
		m[f.name] = f
	}
	return Row{fields: m}
}

// Get returns the field stored under name.
func (r Row) Get(name string) (Field, bool) {
	f, ok := r.fields[name]
	return f, ok
}

// Value returns the display text stored under name, or "" if absent.
func (r Row) Value(name string) string {
	return r.fields[name].text
}

// Len returns the number of fields in the row.
func (r Row) Len() int {
	return len(r.fields)
}

// Values returns the display text of the named fields, in order.
func (r Row) Values(names []string) []string {
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = r.Value(name)
	}
	return values
}
