package typename

// Descriptor is the sealed set of structured M type descriptors Render
// knows how to render. It is closed via an unexported marker method;
// callers cannot add new variants from outside this package.
type Descriptor interface {
	descriptor()
}

// Primitive names one of the M primitive types.
type Primitive struct {
	Kind PrimitiveKind
}

func (Primitive) descriptor() {}

// Nullable wraps an underlying Descriptor whose rendering gains a
// "nullable " prefix. NewNullable panics when given Primitive{AnyNonNull}:
// anynonnull is the one primitive that can never be nullable.
type Nullable struct {
	Inner Descriptor
}

func (Nullable) descriptor() {}

// NewNullable wraps inner as nullable, panicking if inner is the anynonnull
// primitive.
func NewNullable(inner Descriptor) Nullable {
	if p, ok := inner.(Primitive); ok && p.Kind == PrimitiveAnyNonNull {
		panic("typename.NewNullable: anynonnull cannot be nullable")
	}
	return Nullable{Inner: inner}
}

// AnyUnion is an ordered set of member descriptors rendered "A | B | C".
type AnyUnion struct {
	Members []Descriptor
}

func (AnyUnion) descriptor() {}

// DefinedList is an ordered, possibly-empty list of member type
// descriptors, rendered "{T1, T2, ...}".
type DefinedList struct {
	Members []Descriptor
}

func (DefinedList) descriptor() {}

// DefinedListType is a "type" value over a DefinedList shape.
type DefinedListType struct {
	List DefinedList
}

func (DefinedListType) descriptor() {}

// ListType is a "type" value over a single homogeneous element type,
// rendered "type {E}".
type ListType struct {
	Element Descriptor
}

func (ListType) descriptor() {}

// RecordField is one key: type pair of a record shape, in insertion order.
type RecordField struct {
	Name string
	Type Descriptor
}

// DefinedRecord is an ordered set of fields, either closed or open
// (carrying a trailing ", ...").
type DefinedRecord struct {
	Fields []RecordField
	Open   bool
}

func (DefinedRecord) descriptor() {}

// RecordType is a "type" value over a DefinedRecord shape.
type RecordType struct {
	Record DefinedRecord
}

func (RecordType) descriptor() {}

// DefinedTable is a record shape prefixed with the "table" keyword.
type DefinedTable struct {
	Record DefinedRecord
}

func (DefinedTable) descriptor() {}

// TableType is a "type table" value over a DefinedRecord's bracket group.
type TableType struct {
	Record DefinedRecord
}

func (TableType) descriptor() {}

// TableTypePrimaryExpression is a "type table" value over an arbitrary
// primary expression descriptor rather than a literal record shape.
type TableTypePrimaryExpression struct {
	Primary Descriptor
}

func (TableTypePrimaryExpression) descriptor() {}

// PrimaryPrimitiveType is a "type" value over a bare Primitive.
type PrimaryPrimitiveType struct {
	Primitive Primitive
}

func (PrimaryPrimitiveType) descriptor() {}

// Parameter is one parameter of a function shape: a name, its type, and
// whether it is marked optional.
type Parameter struct {
	Name     string
	Type     Descriptor
	Optional bool
}

// DefinedFunction is a function value's shape, rendered
// "(params) => returnType".
type DefinedFunction struct {
	Parameters []Parameter
	ReturnType Descriptor
}

func (DefinedFunction) descriptor() {}

// FunctionType is a "type function" value, rendered
// "type function (params) returnType" (space-separated, no arrow).
type FunctionType struct {
	Parameters []Parameter
	ReturnType Descriptor
}

func (FunctionType) descriptor() {}
