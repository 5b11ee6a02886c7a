package token

import "strconv"

// Kind identifies a lexical token type as assigned by the upstream M
// lexer/grammar (e.g. an ANTLR-generated token type constant). This package
// treats Kind as opaque: it neither enumerates nor interprets specific
// values, since the concrete lexical grammar is an external collaborator's
// contract.
type Kind int32

// String returns the decimal token type, since this package has no access
// to the lexer's symbolic names.
func (k Kind) String() string {
	return strconv.FormatInt(int64(k), 10)
}
