package reader

import (
	"fmt"
	"io"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// schemaIndent is the indentation added per nesting level by WriteSchema.
const schemaIndent = "  "

// Column describes one leaf column of a parquet schema.
type Column struct {
	// Name is the last segment of Path and is used as the display header.
	Name string
	// Path is the full path from the schema root to the leaf.
	Path []string
	// Index is the column index of the leaf, matching parquet.Value.Column.
	Index int
	// Kind is the physical storage type of the leaf.
	Kind parquet.Kind
	// Primitive is false for leaves nested inside a group.
	Primitive bool
	// Logical is the logical type annotation, empty when there is none.
	Logical string
	// UUID reports a UUID logical type annotation.
	UUID bool
	// Repeated reports whether the leaf itself is repeated.
	Repeated bool
}

// leafColumns lists the leaf columns of schema in column-index order.
func leafColumns(schema *parquet.Schema) []Column {
	paths := schema.Columns()
	columns := make([]Column, 0, len(paths))
	for _, path := range paths {
		leaf, ok := schema.Lookup(path...)
		if !ok {
			continue
		}
		col := Column{
			Name:      path[len(path)-1],
			Path:      path,
			Index:     leaf.ColumnIndex,
			Kind:      leaf.Node.Type().Kind(),
			Primitive: len(path) == 1 && leaf.Node.Leaf(),
			Repeated:  leaf.Node.Repeated(),
		}
		if lt := leaf.Node.Type().LogicalType(); lt != nil {
			col.Logical = lt.String()
			col.UUID = lt.UUID != nil
		}
		columns = append(columns, col)
	}
	return columns
}

// WriteSchema writes a human-readable dump of schema to w, indenting each
// nesting level by two spaces.
//
// The layout follows the parquet message syntax:
//
//	message schema {
//	  required int64 id;
//	  optional binary name (STRING);
//	}
func WriteSchema(w io.Writer, schema *parquet.Schema) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "message %s {\n", schema.Name())
	for _, field := range schema.Fields() {
		writeField(&sb, field, schemaIndent)
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeField(sb *strings.Builder, field parquet.Field, indent string) {
	sb.WriteString(indent)
	sb.WriteString(repetition(field))
	sb.WriteByte(' ')

	if !field.Leaf() {
		sb.WriteString("group ")
		sb.WriteString(field.Name())
		writeAnnotation(sb, field)
		sb.WriteString(" {\n")
		for _, child := range field.Fields() {
			writeField(sb, child, indent+schemaIndent)
		}
		sb.WriteString(indent)
		sb.WriteString("}\n")
		return
	}

	sb.WriteString(physicalName(field))
	sb.WriteByte(' ')
	sb.WriteString(field.Name())
	writeAnnotation(sb, field)
	sb.WriteString(";\n")
}

func writeAnnotation(sb *strings.Builder, field parquet.Field) {
	if lt := field.Type().LogicalType(); lt != nil {
		fmt.Fprintf(sb, " (%s)", lt.String())
	}
}

func repetition(node parquet.Node) string {
	switch {
	case node.Repeated():
		return "repeated"
	case node.Optional():
		return "optional"
	default:
		return "required"
	}
}

func physicalName(node parquet.Node) string {
	t := node.Type()
	switch t.Kind() {
	case parquet.ByteArray:
		return "binary"
	case parquet.FixedLenByteArray:
		return fmt.Sprintf("fixed_len_byte_array(%d)", t.Length())
	default:
		return strings.ToLower(t.Kind().String())
	}
}

// SchemaInfo represents metadata about a single column in a Parquet file.
type SchemaInfo struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type"`
	Required     bool   `json:"required"`
	Optional     bool   `json:"optional"`
	Repeated     bool   `json:"repeated"`
}

// ExtractSchemaInfo extracts schema information from a Parquet file.
//
// Returns a slice of SchemaInfo containing metadata about each leaf column
// including name, type information, and whether the field is
// required/optional/repeated.
//
// For nested types, field names use dot notation (e.g., "address.street").
func ExtractSchemaInfo(path string, opts Options) ([]SchemaInfo, error) {
	r, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var infos []SchemaInfo
	for _, field := range r.Schema().Fields() {
		infos = append(infos, extractFieldInfo(field, "", false)...)
	}
	return infos, nil
}

// extractFieldInfo recursively extracts schema information from a field,
// tracking whether any parent field is repeated.
func extractFieldInfo(field parquet.Field, prefix string, parentRepeated bool) []SchemaInfo {
	fieldName := field.Name()
	if prefix != "" {
		fieldName = prefix + "." + fieldName
	}
	isRepeated := parentRepeated || field.Repeated()

	if !field.Leaf() {
		var infos []SchemaInfo
		for _, child := range field.Fields() {
			infos = append(infos, extractFieldInfo(child, fieldName, isRepeated)...)
		}
		return infos
	}

	return []SchemaInfo{{
		Name:         fieldName,
		Type:         userFriendlyType(field),
		PhysicalType: field.Type().Kind().String(),
		LogicalType:  logicalType(field),
		Required:     field.Required(),
		Optional:     field.Optional(),
		Repeated:     isRepeated,
	}}
}

func logicalType(field parquet.Field) string {
	lt := field.Type().LogicalType()
	if lt == nil {
		return ""
	}
	return lt.String()
}

// userFriendlyType converts Parquet's physical and logical types into
// simpler type names for end users.
func userFriendlyType(field parquet.Field) string {
	if lt := field.Type().LogicalType(); lt != nil {
		switch {
		case lt.UTF8 != nil:
			return "STRING"
		case lt.Enum != nil:
			return "ENUM"
		case lt.UUID != nil:
			return "UUID"
		case lt.Date != nil:
			return "DATE"
		case lt.Time != nil:
			return "TIME"
		case lt.Timestamp != nil:
			return "TIMESTAMP"
		case lt.Decimal != nil:
			return "DECIMAL"
		case lt.Json != nil:
			return "JSON"
		case lt.Bson != nil:
			return "BSON"
		}
	}

	switch kind := field.Type().Kind(); kind {
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	default:
		return kind.String()
	}
}
