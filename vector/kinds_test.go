package vector

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-vector/scalar"
)

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 30 {
		t.Fatalf("len(Kinds()) = %d, want 30", len(kinds))
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		if seen[k.Name] {
			t.Fatalf("duplicate kind %q", k.Name)
		}
		seen[k.Name] = true
		if k.Arity < 2 || k.Arity > 4 {
			t.Fatalf("%s: arity %d", k.Name, k.Arity)
		}
	}
	for _, name := range []string{"Byte2", "SByte4", "UShort3", "Long2", "Vector3F", "Vector4D"} {
		if !seen[name] {
			t.Fatalf("missing kind %q", name)
		}
	}
}

func TestLookupKind(t *testing.T) {
	tests := []struct {
		name   string
		scalar ScalarKind
		bytes  int
		float  bool
		signed bool
	}{
		{"Byte2", KindUint8, 2, false, false},
		{"short3", KindInt16, 6, false, true},
		{"UInt4", KindUint32, 16, false, false},
		{"Vector3F", KindFloat32, 12, true, true},
		{"VECTOR4D", KindFloat64, 32, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, ok := LookupKind(tc.name)
			if !ok {
				t.Fatalf("LookupKind(%q) not found", tc.name)
			}
			if k.Scalar != tc.scalar || k.ByteSize() != tc.bytes || k.Float != tc.float || k.Signed != tc.signed {
				t.Fatalf("LookupKind(%q) = %+v", tc.name, k)
			}
		})
	}
	if _, ok := LookupKind("Vector5F"); ok {
		t.Fatal("LookupKind accepted an unknown name")
	}
}

func TestParseScalarKind(t *testing.T) {
	for in, want := range map[string]ScalarKind{
		"u8":      KindUint8,
		"byte":    KindUint8,
		" I32 ":   KindInt32,
		"float64": KindFloat64,
		"f32":     KindFloat32,
		"uint64":  KindUint64,
	} {
		got, err := ParseScalarKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseScalarKind(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseScalarKind("f16"); !errors.Is(err, scalar.ErrInvalidArgument) {
		t.Fatalf("ParseScalarKind(f16) err = %v", err)
	}
}

func TestScalarKindString(t *testing.T) {
	if KindInt16.String() != "i16" || KindFloat64.String() != "f64" {
		t.Fatalf("String = %s, %s", KindInt16, KindFloat64)
	}
	if got := ScalarKind(42).String(); got != "ScalarKind(42)" {
		t.Fatalf("String out of range = %q", got)
	}
}
