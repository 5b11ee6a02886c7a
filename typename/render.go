package typename

import (
	"fmt"
	"strings"
)

// Render returns d's canonical M surface-syntax form. Render is total: every
// Descriptor variant defined in this package renders deterministically with
// no I/O.
func Render(d Descriptor) string {
	switch v := d.(type) {
	case Primitive:
		return v.Kind.String()
	case Nullable:
		return "nullable " + Render(v.Inner)
	case AnyUnion:
		parts := make([]string, len(v.Members))
		for i, m := range v.Members {
			parts[i] = Render(m)
		}
		return strings.Join(parts, " | ")
	case DefinedList:
		return renderDefinedList(v)
	case DefinedListType:
		return "type " + renderDefinedList(v.List)
	case ListType:
		return "type {" + Render(v.Element) + "}"
	case DefinedRecord:
		return renderDefinedRecord(v)
	case RecordType:
		return "type " + renderDefinedRecord(v.Record)
	case DefinedTable:
		return "table " + renderDefinedRecord(v.Record)
	case TableType:
		return "type table " + renderDefinedRecord(v.Record)
	case TableTypePrimaryExpression:
		return "type table " + Render(v.Primary)
	case PrimaryPrimitiveType:
		return "type " + Render(v.Primitive)
	case DefinedFunction:
		return renderParameters(v.Parameters) + " => " + Render(v.ReturnType)
	case FunctionType:
		return "type function " + renderParameters(v.Parameters) + " " + Render(v.ReturnType)
	default:
		panic(fmt.Sprintf("typename.Render: unhandled descriptor %T", d))
	}
}

func renderDefinedList(l DefinedList) string {
	if len(l.Members) == 0 {
		return "{}"
	}
	parts := make([]string, len(l.Members))
	for i, m := range l.Members {
		parts[i] = Render(m)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func renderDefinedRecord(r DefinedRecord) string {
	if len(r.Fields) == 0 {
		if r.Open {
			return "[...]"
		}
		return "[]"
	}
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Name + ": " + Render(f.Type)
	}
	body := strings.Join(parts, ", ")
	if r.Open {
		body += ", ..."
	}
	return "[" + body + "]"
}

func renderParameters(params []Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		var b strings.Builder
		b.WriteString(p.Name)
		b.WriteString(": ")
		if p.Optional {
			b.WriteString("optional ")
		}
		b.WriteString(Render(p.Type))
		parts[i] = b.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
