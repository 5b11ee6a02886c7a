package ast

import "fmt"

// Kind names the grammar production an ast node or still-open context
// realizes. Kind is a closed enumeration: every value the core ever
// constructs appears in the switch below, the same discipline the rest of
// the toolchain uses for its closed-enum types.
type Kind uint16

const (
	// KindUnknown is the zero value and never a valid node kind; its
	// presence here only guards against an uninitialized Kind silently
	// behaving like a real one.
	KindUnknown Kind = iota

	// Leaf productions: kinds that never carry children, only a literal
	// payload and the span of the token(s) they cover.
	KindConstant
	KindIdentifier
	KindGeneralizedIdentifier
	KindLiteralNumber
	KindLiteralText
	KindLiteralLogical
	KindLiteralNull

	// Non-leaf productions.
	KindListExpression
	KindCsv
	KindRecordLiteral
	KindRecordExpression
	KindParenthesizedExpression
	KindInvokeExpression
	KindFunctionExpression
	KindParameterList
	KindParameter
	KindIfExpression
	KindLetExpression
	KindEachExpression
	KindMetadataExpression
	KindTypeExpression
	KindNullablePrimitiveType
	KindAsExpression
	KindIsExpression
	KindUnaryExpression
	KindArithmeticExpression
	KindEqualityExpression
	KindRelationalExpression
	KindLogicalExpression
	KindFieldSelector
	KindFieldProjection
	KindItemAccessExpression
	KindIdentifierExpression
	KindNotImplementedExpression
	KindErrorRaisingExpression
	KindErrorHandlingExpression
	KindOtherwiseExpression
	KindTryExpression
	KindSectionDocument
	KindSectionMember
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindConstant:
		return "Constant"
	case KindIdentifier:
		return "Identifier"
	case KindGeneralizedIdentifier:
		return "GeneralizedIdentifier"
	case KindLiteralNumber:
		return "LiteralNumber"
	case KindLiteralText:
		return "LiteralText"
	case KindLiteralLogical:
		return "LiteralLogical"
	case KindLiteralNull:
		return "LiteralNull"
	case KindListExpression:
		return "ListExpression"
	case KindCsv:
		return "Csv"
	case KindRecordLiteral:
		return "RecordLiteral"
	case KindRecordExpression:
		return "RecordExpression"
	case KindParenthesizedExpression:
		return "ParenthesizedExpression"
	case KindInvokeExpression:
		return "InvokeExpression"
	case KindFunctionExpression:
		return "FunctionExpression"
	case KindParameterList:
		return "ParameterList"
	case KindParameter:
		return "Parameter"
	case KindIfExpression:
		return "IfExpression"
	case KindLetExpression:
		return "LetExpression"
	case KindEachExpression:
		return "EachExpression"
	case KindMetadataExpression:
		return "MetadataExpression"
	case KindTypeExpression:
		return "TypeExpression"
	case KindNullablePrimitiveType:
		return "NullablePrimitiveType"
	case KindAsExpression:
		return "AsExpression"
	case KindIsExpression:
		return "IsExpression"
	case KindUnaryExpression:
		return "UnaryExpression"
	case KindArithmeticExpression:
		return "ArithmeticExpression"
	case KindEqualityExpression:
		return "EqualityExpression"
	case KindRelationalExpression:
		return "RelationalExpression"
	case KindLogicalExpression:
		return "LogicalExpression"
	case KindFieldSelector:
		return "FieldSelector"
	case KindFieldProjection:
		return "FieldProjection"
	case KindItemAccessExpression:
		return "ItemAccessExpression"
	case KindIdentifierExpression:
		return "IdentifierExpression"
	case KindNotImplementedExpression:
		return "NotImplementedExpression"
	case KindErrorRaisingExpression:
		return "ErrorRaisingExpression"
	case KindErrorHandlingExpression:
		return "ErrorHandlingExpression"
	case KindOtherwiseExpression:
		return "OtherwiseExpression"
	case KindTryExpression:
		return "TryExpression"
	case KindSectionDocument:
		return "SectionDocument"
	case KindSectionMember:
		return "SectionMember"
	default:
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
}

// IsLeaf reports whether kind never carries children, only a literal
// payload. Non-leaf kinds have one or more ordered attributes (children).
func (k Kind) IsLeaf() bool {
	switch k {
	case KindConstant,
		KindIdentifier,
		KindGeneralizedIdentifier,
		KindLiteralNumber,
		KindLiteralText,
		KindLiteralLogical,
		KindLiteralNull:
		return true
	default:
		return false
	}
}
