package token

// Precedence levels for binary operators, lowest to highest, matching
// the subset of clang's prec::Level ladder that spec.md's punctuator
// catalogue exercises. The parser layers two synthetic levels above
// PrecedenceMultiplicative at its own call sites (spec.md §4.2); this
// oracle stays pure and is never mutated to add them.
const (
	PrecedenceUnknown Precedence = 0

	PrecedenceComma Precedence = iota
	PrecedenceAssignment
	PrecedenceLogicalOr
	PrecedenceLogicalAnd
	PrecedenceInclusiveOr
	PrecedenceAnd
	PrecedenceEquality
	PrecedenceRelational
	PrecedenceAdditive
	PrecedenceMultiplicative
)

// Precedence is an integer precedence level; 0 means "not a binary
// operator."
type Precedence int

// BinaryPrecedence reports the binary-operator precedence of kind, or
// PrecedenceUnknown (0) if kind never appears as a binary operator.
// Member-access (. and ->) is deliberately excluded: the parser
// overrides those to its own synthetic PrecedenceArrowAndPeriod level
// at the call site, per spec.md §4.2.
func BinaryPrecedence(kind Kind) Precedence {
	switch kind {
	case Comma:
		return PrecedenceComma
	case Equal:
		return PrecedenceAssignment
	case PipePipe:
		return PrecedenceLogicalOr
	case AmpAmp:
		return PrecedenceLogicalAnd
	case Pipe:
		return PrecedenceInclusiveOr
	case Amp:
		return PrecedenceAnd
	case EqualEqual, BangEqual:
		return PrecedenceEquality
	case Less, Greater:
		return PrecedenceRelational
	case Plus, Minus:
		return PrecedenceAdditive
	case Star, Slash, Percent:
		return PrecedenceMultiplicative
	default:
		return PrecedenceUnknown
	}
}
