package record

import (
	"math"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/deprecated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/pqinspect/reader"
)

func primitive(name string, kind parquet.Kind) reader.Column {
	return reader.Column{Name: name, Path: []string{name}, Kind: kind, Primitive: true}
}

func int96(nanos uint64, julianDay uint32) deprecated.Int96 {
	return deprecated.Int96{uint32(nanos), uint32(nanos >> 32), julianDay}
}

func TestFormatValue(t *testing.T) {
	uuidCol := primitive("uid", parquet.FixedLenByteArray)
	uuidCol.UUID = true
	id := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}

	tests := []struct {
		name   string
		col    reader.Column
		values []parquet.Value
		want   string
	}{
		{"float", primitive("f", parquet.Float), []parquet.Value{parquet.FloatValue(1.5)}, "1.5"},
		{"float NaN", primitive("f", parquet.Float), []parquet.Value{parquet.FloatValue(float32(math.NaN()))}, "NaN"},
		{"double", primitive("d", parquet.Double), []parquet.Value{parquet.DoubleValue(2.25)}, "2.25"},
		{"whole float", primitive("f", parquet.Float), []parquet.Value{parquet.FloatValue(1)}, "1.0"},
		{"large double", primitive("d", parquet.Double), []parquet.Value{parquet.DoubleValue(1e21)}, "1.0E21"},
		{"double NaN", primitive("d", parquet.Double), []parquet.Value{parquet.DoubleValue(math.NaN())}, "NaN"},
		{"int32", primitive("i", parquet.Int32), []parquet.Value{parquet.Int32Value(-42)}, "-42"},
		{"int64", primitive("l", parquet.Int64), []parquet.Value{parquet.Int64Value(1 << 40)}, "1099511627776"},
		{"boolean true", primitive("b", parquet.Boolean), []parquet.Value{parquet.BooleanValue(true)}, "true"},
		{"boolean false", primitive("b", parquet.Boolean), []parquet.Value{parquet.BooleanValue(false)}, "false"},
		{"utf8 bytes", primitive("s", parquet.ByteArray), []parquet.Value{parquet.ByteArrayValue([]byte("héllo"))}, "héllo"},
		{"empty bytes", primitive("s", parquet.ByteArray), []parquet.Value{parquet.ByteArrayValue([]byte{})}, ""},
		{"binary bytes", primitive("s", parquet.ByteArray), []parquet.Value{parquet.ByteArrayValue([]byte{0xff, 0x00, 0x10})}, "0xff0010"},
		{"fixed bytes", primitive("c", parquet.FixedLenByteArray), []parquet.Value{parquet.FixedLenByteArrayValue([]byte("abcd"))}, "abcd"},
		{"uuid", uuidCol, []parquet.Value{parquet.FixedLenByteArrayValue(id)}, "12345678-9abc-def0-1234-56789abcdef0"},
		{"int96 epoch", primitive("t", parquet.Int96), []parquet.Value{parquet.Int96Value(int96(0, 2440588))}, "1970-01-01T00:00:00Z"},
		{"int96 nanos", primitive("t", parquet.Int96), []parquet.Value{parquet.Int96Value(int96(3_600_000_000_001, 2440589))}, "1970-01-02T01:00:00.000000001Z"},
		{"repeated uses first value", primitive("i", parquet.Int32), []parquet.Value{parquet.Int32Value(7), parquet.Int32Value(8)}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatValue(tt.values, tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValue_Null(t *testing.T) {
	kinds := []parquet.Kind{
		parquet.Boolean, parquet.Int32, parquet.Int64, parquet.Int96,
		parquet.Float, parquet.Double, parquet.ByteArray, parquet.FixedLenByteArray,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			got, err := FormatValue(nil, primitive("c", kind))
			require.NoError(t, err)
			assert.Equal(t, "null", got)

			got, err = FormatValue([]parquet.Value{{}}, primitive("c", kind))
			require.NoError(t, err)
			assert.Equal(t, "null", got)
		})
	}
}

func TestFormatValue_NonPrimitive(t *testing.T) {
	col := reader.Column{Name: "street", Path: []string{"address", "street"}, Kind: parquet.Double}

	// A non-primitive column is never decoded, even if the value would not
	// match its declared kind.
	got, err := FormatValue([]parquet.Value{parquet.ByteArrayValue([]byte("x"))}, col)
	require.NoError(t, err)
	assert.Equal(t, "non-primitive type", got)

	got, err = FormatValue(nil, col)
	require.NoError(t, err)
	assert.Equal(t, "non-primitive type", got)
}

func TestFormatValue_UnsupportedType(t *testing.T) {
	col := primitive("weird", parquet.Kind(42))

	_, err := FormatValue([]parquet.Value{parquet.Int32Value(1)}, col)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "weird")
}

func TestFormatValue_UnsupportedTypeNull(t *testing.T) {
	// Absence is checked before the type, so a null never fails.
	got, err := FormatValue(nil, primitive("weird", parquet.Kind(42)))
	require.NoError(t, err)
	assert.Equal(t, "null", got)
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in      float64
		bitSize int
		want    string
	}{
		{0, 64, "0.0"},
		{math.Copysign(0, -1), 64, "-0.0"},
		{1, 64, "1.0"},
		{10, 64, "10.0"},
		{-0.5, 64, "-0.5"},
		{0.001, 64, "0.001"},
		{9999999, 64, "9999999.0"},
		{1e7, 64, "1.0E7"},
		{1e21, 64, "1.0E21"},
		{1.5e-4, 64, "1.5E-4"},
		{-2.5e-10, 64, "-2.5E-10"},
		{float64(float32(0.1)), 32, "0.1"},
		{float64(float32(3.4028235e38)), 32, "3.4028235E38"},
		{math.Inf(1), 64, "Infinity"},
		{math.Inf(-1), 64, "-Infinity"},
		{math.NaN(), 64, "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFloat(tt.in, tt.bitSize))
		})
	}
}
