package typename

import "fmt"

// PrimitiveKind is a closed enumeration of the M primitive type names.
type PrimitiveKind uint8

const (
	// PrimitiveUnset is the zero value and never a valid primitive kind.
	PrimitiveUnset PrimitiveKind = iota
	PrimitiveAny
	PrimitiveAnyNonNull
	PrimitiveBinary
	PrimitiveDate
	PrimitiveDateTime
	PrimitiveDateTimeZone
	PrimitiveDuration
	PrimitiveFunction
	PrimitiveList
	PrimitiveLogical
	PrimitiveNone
	PrimitiveNull
	PrimitiveNumber
	PrimitiveRecord
	PrimitiveTable
	PrimitiveType
	PrimitiveAction
	PrimitiveTime
	PrimitiveNotApplicable
	PrimitiveUnknown
	PrimitiveText
)

// String returns the literal M surface word for the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveAny:
		return "any"
	case PrimitiveAnyNonNull:
		return "anynonnull"
	case PrimitiveBinary:
		return "binary"
	case PrimitiveDate:
		return "date"
	case PrimitiveDateTime:
		return "datetime"
	case PrimitiveDateTimeZone:
		return "datetimezone"
	case PrimitiveDuration:
		return "duration"
	case PrimitiveFunction:
		return "function"
	case PrimitiveList:
		return "list"
	case PrimitiveLogical:
		return "logical"
	case PrimitiveNone:
		return "none"
	case PrimitiveNull:
		return "null"
	case PrimitiveNumber:
		return "number"
	case PrimitiveRecord:
		return "record"
	case PrimitiveTable:
		return "table"
	case PrimitiveType:
		return "type"
	case PrimitiveAction:
		return "action"
	case PrimitiveTime:
		return "time"
	case PrimitiveNotApplicable:
		return "not applicable"
	case PrimitiveUnknown:
		return "unknown"
	case PrimitiveText:
		return "text"
	default:
		return fmt.Sprintf("PrimitiveKind(%d)", uint8(k))
	}
}
