package record

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/pqinspect/reader"
)

const (
	nonPrimitiveText = "non-primitive type"
	nullText         = "null"
	nanText          = "NaN"
)

// ErrUnsupportedType is returned when a column has a physical type the
// formatter does not know how to render.
var ErrUnsupportedType = errors.New("unsupported physical type")

// julianUnixEpoch is the Julian day number of 1970-01-01.
const julianUnixEpoch = 2440588

// FormatValue renders the values a record holds for col.
//
// Nested columns render as "non-primitive type" and columns without a value
// render as "null". Otherwise the first value is rendered according to the
// physical type of the column. Byte sequences that are valid UTF-8 are
// printed verbatim, other byte sequences as 0x-prefixed lowercase hex.
func FormatValue(values []parquet.Value, col reader.Column) (string, error) {
	if !col.Primitive {
		return nonPrimitiveText, nil
	}

	v, ok := firstValue(values)
	if !ok {
		return nullText, nil
	}

	switch col.Kind {
	case parquet.Float:
		return formatFloat(float64(v.Float()), 32), nil
	case parquet.Double:
		return formatFloat(v.Double(), 64), nil
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10), nil
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10), nil
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return formatBytes(v.ByteArray(), col.UUID), nil
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean()), nil
	case parquet.Int96:
		i96 := v.Int96()
		nanos := uint64(i96[1])<<32 | uint64(i96[0])
		return formatInt96(nanos, i96[2]), nil
	default:
		return "", fmt.Errorf("%w: column %q has kind %d", ErrUnsupportedType, col.Name, int(col.Kind))
	}
}

// firstValue returns the first non-null value, reporting false when the
// column has no value in this record.
func firstValue(values []parquet.Value) (parquet.Value, bool) {
	for _, v := range values {
		if !v.IsNull() {
			return v, true
		}
	}
	return parquet.Value{}, false
}

// formatFloat renders f with the shortest digits that round-trip at bitSize.
// Magnitudes in [1e-3, 1e7) print as plain decimals, others as d.dddEn, and
// both forms always carry a fractional digit: 1.0, 0.25, 1.0E21, 1.5E-4.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return nanText
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	if abs := math.Abs(f); abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(f, 'f', -1, bitSize))
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, bitSize), "e")
	sign := ""
	switch exp[0] {
	case '-':
		sign = "-"
		exp = exp[1:]
	case '+':
		exp = exp[1:]
	}
	return withFraction(mantissa) + "E" + sign + strings.TrimLeft(exp, "0")
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func formatBytes(b []byte, isUUID bool) string {
	if isUUID {
		if id, err := uuid.FromBytes(b); err == nil {
			return id.String()
		}
	}
	if utf8.Valid(b) {
		return string(b)
	}
	return "0x" + hex.EncodeToString(b)
}

// formatInt96 decodes the legacy INT96 timestamp layout: nanoseconds within
// the day followed by the Julian day number.
func formatInt96(nanosOfDay uint64, julianDay uint32) string {
	days := int64(julianDay) - julianUnixEpoch
	t := time.Unix(days*86400, 0).Add(time.Duration(nanosOfDay)).UTC()
	return t.Format(time.RFC3339Nano)
}
