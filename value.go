package gsqlite

import (
	"fmt"
	"strconv"

	"github.com/orsinium-labs/enum"
)

// Type is the dynamic type tag of a Value. SQLite columns have no
// fixed static type, so every value carries its own tag.
type Type enum.Member[string]

var (
	TypeInteger = Type{Value: "integer"}
	TypeReal    = Type{Value: "real"}
	TypeText    = Type{Value: "text"}
	TypeBlob    = Type{Value: "blob"}
	TypeNull    = Type{Value: "null"}

	// Types enumerates every value type tag.
	Types = enum.New(TypeInteger, TypeReal, TypeText, TypeBlob, TypeNull)
)

// Value is a single SQLite parameter or column value, a tagged variant
// over the five dynamic types of the engine.
type Value struct {
	typ   Type
	intv  int64
	realv float64
	textv string
	blobv []byte
}

// Int64 returns an integer Value.
func Int64(v int64) Value {
	return Value{typ: TypeInteger, intv: v}
}

// Real returns a floating point Value.
func Real(v float64) Value {
	return Value{typ: TypeReal, realv: v}
}

// Text returns a text Value.
func Text(v string) Value {
	return Value{typ: TypeText, textv: v}
}

// Blob returns a binary Value. The slice is kept as is, not copied.
func Blob(v []byte) Value {
	return Value{typ: TypeBlob, blobv: v}
}

// Null returns the NULL Value.
func Null() Value {
	return Value{typ: TypeNull}
}

// Type returns the dynamic type tag of the value.
func (v Value) Type() Type {
	return v.typ
}

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

// Int64 returns the integer payload. It is zero for other types.
func (v Value) Int64() int64 {
	return v.intv
}

// Real returns the floating point payload. It is zero for other types.
func (v Value) Real() float64 {
	return v.realv
}

// Text returns the text payload. It is empty for other types.
func (v Value) Text() string {
	return v.textv
}

// Blob returns the binary payload. It is nil for other types.
func (v Value) Blob() []byte {
	return v.blobv
}

// Any returns the payload as a plain Go value: int64, float64, string,
// []byte or nil.
func (v Value) Any() any {
	switch v.typ {
	case TypeInteger:
		return v.intv
	case TypeReal:
		return v.realv
	case TypeText:
		return v.textv
	case TypeBlob:
		return v.blobv
	default:
		return nil
	}
}

// String renders the value for display. Text is returned verbatim,
// blobs use the x'...' hex literal form and NULL renders as "NULL".
func (v Value) String() string {
	switch v.typ {
	case TypeInteger:
		return strconv.FormatInt(v.intv, 10)
	case TypeReal:
		return strconv.FormatFloat(v.realv, 'g', -1, 64)
	case TypeText:
		return v.textv
	case TypeBlob:
		return fmt.Sprintf("x'%x'", v.blobv)
	default:
		return "NULL"
	}
}

// Row is an ordered, fixed-arity sequence of column values produced
// per result step.
type Row []Value

// Values returns the row as plain Go values, in column order.
func (r Row) Values() []any {
	values := make([]any, len(r))
	for i, v := range r {
		values[i] = v.Any()
	}
	return values
}

// newBindValue normalizes a Go value into a Value for binding.
// Supported types are the ones the engine can store: integers, bools,
// floats, strings, byte slices, nil and Value itself.
func newBindValue(param any) (Value, error) {
	switch v := param.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case int:
		return Int64(int64(v)), nil
	case int32:
		return Int64(int64(v)), nil
	case int64:
		return Int64(v), nil
	case bool:
		if v {
			return Int64(1), nil
		}
		return Int64(0), nil
	case float32:
		return Real(float64(v)), nil
	case float64:
		return Real(v), nil
	case string:
		return Text(v), nil
	case []byte:
		return Blob(v), nil
	default:
		return Value{}, errf(ErrProgramming, "cannot bind parameter of type %T", param)
	}
}
