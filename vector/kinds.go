package vector

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-vector/scalar"
)

// ScalarKind identifies the component type of a family member.
type ScalarKind int

// Scalar kinds in family order, narrowest unsigned first.
const (
	KindUint8 ScalarKind = iota
	KindInt8
	KindUint16
	KindInt16
	KindUint32
	KindInt32
	KindUint64
	KindInt64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindUint8:   "u8",
	KindInt8:    "i8",
	KindUint16:  "u16",
	KindInt16:   "i16",
	KindUint32:  "u32",
	KindInt32:   "i32",
	KindUint64:  "u64",
	KindInt64:   "i64",
	KindFloat32: "f32",
	KindFloat64: "f64",
}

// String returns the short name ("u8", "f32", ...).
func (k ScalarKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ScalarKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseScalarKind accepts the short names returned by String and the Go type
// names ("uint8", "float32", ...).
func ParseScalarKind(s string) (ScalarKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if s == name {
			return ScalarKind(i), nil
		}
	}
	goNames := map[string]ScalarKind{
		"uint8": KindUint8, "byte": KindUint8, "int8": KindInt8,
		"uint16": KindUint16, "int16": KindInt16,
		"uint32": KindUint32, "int32": KindInt32,
		"uint64": KindUint64, "int64": KindInt64,
		"float32": KindFloat32, "float64": KindFloat64,
	}
	if k, ok := goNames[s]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown scalar kind %q", scalar.ErrInvalidArgument, s)
}

// Kind describes one concrete family member.
type Kind struct {
	Name    string
	Scalar  ScalarKind
	Arity   int
	Float   bool
	Signed  bool
	BitSize int
}

// ByteSize returns the storage size of one vector in bytes.
func (k Kind) ByteSize() int {
	return k.Arity * k.BitSize / 8
}

func describe[T scalar.Number](prefix string, sk ScalarKind, suffix string) []Kind {
	out := make([]Kind, 0, 3)
	for n := 2; n <= 4; n++ {
		out = append(out, Kind{
			Name:    fmt.Sprintf("%s%d%s", prefix, n, suffix),
			Scalar:  sk,
			Arity:   n,
			Float:   scalar.IsFloat[T](),
			Signed:  scalar.IsSigned[T](),
			BitSize: scalar.BitSize[T](),
		})
	}
	return out
}

// Kinds returns every family member, grouped by scalar kind and ordered by
// arity within a group.
func Kinds() []Kind {
	var out []Kind
	out = append(out, describe[uint8]("Byte", KindUint8, "")...)
	out = append(out, describe[int8]("SByte", KindInt8, "")...)
	out = append(out, describe[uint16]("UShort", KindUint16, "")...)
	out = append(out, describe[int16]("Short", KindInt16, "")...)
	out = append(out, describe[uint32]("UInt", KindUint32, "")...)
	out = append(out, describe[int32]("Int", KindInt32, "")...)
	out = append(out, describe[uint64]("ULong", KindUint64, "")...)
	out = append(out, describe[int64]("Long", KindInt64, "")...)
	out = append(out, describe[float32]("Vector", KindFloat32, "F")...)
	out = append(out, describe[float64]("Vector", KindFloat64, "D")...)
	return out
}

// LookupKind finds a family member by name, ignoring case.
func LookupKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}
	return Kind{}, false
}
