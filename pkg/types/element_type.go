package types

import "sync"

// ElementType is an interned descriptor for a scalar element kind. Two
// ElementType values describe the same member if and only if they point at
// the same underlying descriptor — comparison is by identity (pointer
// equality), never by re-deriving the quadruple. This mirrors the original
// ngraph serializer's "to_ref" helper, which re-interns a type by scanning
// a hard-coded list before ever comparing it.
type ElementType struct {
	name     string
	bitwidth uint64
	isReal   bool
	isSigned bool
	cType    string
}

// Name returns the canonical short name of the element type (e.g. "f32").
func (e *ElementType) Name() string { return e.name }

// Describe returns the on-disk quadruple for serialization.
func (e *ElementType) Describe() (bitwidth uint64, isReal, isSigned bool, cType string) {
	return e.bitwidth, e.isReal, e.isSigned, e.cType
}

var (
	Boolean = &ElementType{name: "boolean", bitwidth: 8, isReal: false, isSigned: false, cType: "char"}
	F32     = &ElementType{name: "f32", bitwidth: 32, isReal: true, isSigned: true, cType: "float"}
	F64     = &ElementType{name: "f64", bitwidth: 64, isReal: true, isSigned: true, cType: "double"}
	I8      = &ElementType{name: "i8", bitwidth: 8, isReal: false, isSigned: true, cType: "int8_t"}
	I16     = &ElementType{name: "i16", bitwidth: 16, isReal: false, isSigned: true, cType: "int16_t"}
	I32     = &ElementType{name: "i32", bitwidth: 32, isReal: false, isSigned: true, cType: "int32_t"}
	I64     = &ElementType{name: "i64", bitwidth: 64, isReal: false, isSigned: true, cType: "int64_t"}
	U8      = &ElementType{name: "u8", bitwidth: 8, isReal: false, isSigned: false, cType: "uint8_t"}
	U16     = &ElementType{name: "u16", bitwidth: 16, isReal: false, isSigned: false, cType: "uint16_t"}
	U32     = &ElementType{name: "u32", bitwidth: 32, isReal: false, isSigned: false, cType: "uint32_t"}
	U64     = &ElementType{name: "u64", bitwidth: 64, isReal: false, isSigned: false, cType: "uint64_t"}
)

var (
	registryOnce sync.Once
	registry     []*ElementType
)

func initRegistry() {
	registry = []*ElementType{Boolean, F32, F64, I8, I16, I32, I64, U8, U16, U32, U64}
}

// Canonical interns a (bitwidth, is_real, is_signed, c_type) quadruple,
// returning the one canonical descriptor for it. Returns ErrUnknownElementType
// if the quadruple matches no registered member — the load-time fallback
// required by the Element Type invariant in spec.md §3.
func Canonical(bitwidth uint64, isReal, isSigned bool, cType string) (*ElementType, error) {
	registryOnce.Do(initRegistry)
	for _, et := range registry {
		if et.bitwidth == bitwidth && et.isReal == isReal && et.isSigned == isSigned && et.cType == cType {
			return et, nil
		}
	}
	return nil, ErrUnknownElementTypef(bitwidth, isReal, isSigned, cType)
}

// ByName looks up a canonical descriptor by its short name, for use by
// constructors and tests that don't go through the raw quadruple. Not part
// of the on-disk contract; the wire form always carries the full quadruple.
func ByName(name string) (*ElementType, bool) {
	registryOnce.Do(initRegistry)
	for _, et := range registry {
		if et.name == name {
			return et, true
		}
	}
	return nil, false
}
