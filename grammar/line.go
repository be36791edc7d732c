package grammar

// LineKind is the top level shape of a source line.
type LineKind int

//go:generate go tool stringer -linecomment -type=LineKind
const (
	LINE_DIRECTIVE   = LineKind(0) // directive
	LINE_INSTRUCTION = LineKind(1) // instruction
	LINE_LABEL       = LineKind(2) // label
)

// lineShapes are tried in order; the first match wins.
var lineShapes = []struct {
	kind LineKind
	lead TokenKind
}{
	{LINE_DIRECTIVE, TOKEN_DIRECTIVE},
	{LINE_INSTRUCTION, TOKEN_MNEMONIC},
	{LINE_LABEL, TOKEN_LABEL_DEF},
}

// Classify returns the shape of a line, or ErrInvalidLabelSequence if the line
// is neither a directive, an instruction nor a label definition.
func Classify(tokens []Token) (kind LineKind, err error) {
	if len(tokens) > 0 {
		for _, shape := range lineShapes {
			if tokens[0].Kind == shape.lead {
				kind = shape.kind
				return
			}
		}
	}

	err = ErrInvalidLabelSequence

	return
}
