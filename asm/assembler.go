package asm

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/wordisa/grammar"
	"github.com/ezrec/wordisa/internal"
	"github.com/ezrec/wordisa/isa"
	"github.com/ezrec/wordisa/schema"
)

// Predefined system equates. LINENO and PC are updated for every line.
var sysEquate = map[string]int64{
	"LINENO":         0,
	"PC":             0,
	"WORD_SIZE":      internal.WORD_SIZE,
	"REGISTER_COUNT": isa.REGISTER_COUNT,
}

var (
	charRe  = regexp.MustCompile(`'\\?[^']'`)
	exprRe  = regexp.MustCompile(`\$\((?:[^()$]|\([^()$]*\))*\)`)
	identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// wordRange is the span of values accepted by .word.
var wordRange = schema.Range{Width: 32}

// Assembler is a two pass assembler for the isa instruction set.
type Assembler struct {
	Verbose bool             // If set, verbosely logs the assembler actions.
	Label   map[string]int   // Map of labels to byte addresses.
	Equate  map[string]int64 // Map of equates.

	predefine map[string]int64 // Predefines
}

// source is the per line state carried from the first pass to the second.
type source struct {
	lineNo  int
	text    string
	address int
	skip    bool
}

// Predefine defines an equate that is present in every assembly.
func (asm *Assembler) Predefine(equ string, value int64) {
	if asm.predefine == nil {
		asm.predefine = map[string]int64{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// chars replaces character literals with their decimal value.
func chars(line string) string {
	return charRe.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "e":
				str = "\033"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%d", str[0])
	})
}

// parenEval evaluates a Starlark expression with every equate and known
// label in scope.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, label := range asm.Label {
		pred[key] = starlark.MakeInt(label)
	}
	for key, equ := range asm.Equate {
		pred[key] = starlark.MakeInt64(equ)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expand does compile-time $(...) evaluations.
func (asm *Assembler) expand(line string) (expanded string, err error) {
	expanded = exprRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	return
}

// valueOf returns the value of an immediate, symbol or label token.
func (asm *Assembler) valueOf(tok grammar.Token) (value int64, err error) {
	switch tok.Kind {
	case grammar.TOKEN_DECIMAL:
		value, err = strconv.ParseInt(strings.ReplaceAll(tok.Text, "_", ""), 10, 64)
		if err != nil {
			err = ErrParseNumber(tok.Text)
		}
	case grammar.TOKEN_HEX, grammar.TOKEN_BINARY:
		value, err = strconv.ParseInt(tok.Text, 0, 64)
		if err != nil {
			err = ErrParseNumber(tok.Text)
		}
	case grammar.TOKEN_SYMBOL:
		var ok bool
		value, ok = asm.Equate[tok.Text]
		if !ok {
			err = ErrSymbolMissing(tok.Text)
		}
	case grammar.TOKEN_LABEL:
		value = int64(asm.Label[tok.Text])
	default:
		err = ErrParseNumber(tok.Text)
	}

	return
}

// operands splits a comma separated token list ending in TOKEN_EOL.
func operands(tokens []grammar.Token) (values []grammar.Token, err error) {
	for n, tok := range tokens {
		switch {
		case tok.Kind == grammar.TOKEN_EOL:
			if n%2 == 0 {
				err = ErrWordSyntax
			}
			return
		case n%2 == 1:
			if tok.Kind != grammar.TOKEN_COMMA {
				err = ErrWordSyntax
				return
			}
		default:
			values = append(values, tok)
		}
	}

	err = ErrWordSyntax

	return
}

// equate evaluates `.equ NAME expr`.
func (asm *Assembler) equate(words []string) (err error) {
	if len(words) < 2 || !identRe.MatchString(words[0]) {
		err = ErrEquateSyntax
		return
	}
	name := words[0]
	_, ok := asm.Equate[name]
	if ok {
		err = ErrEquateDuplicate
		return
	}
	value, err := asm.parenEval(strings.Join(words[1:], " "))
	if err != nil {
		return
	}
	asm.Equate[name] = value

	if asm.Verbose {
		log.Printf(".equ %v = %#x\n", name, value)
	}

	return
}

// setLine updates the per line system equates.
func (asm *Assembler) setLine(src *source) {
	asm.Equate["LINENO"] = int64(src.lineNo)
	asm.Equate["PC"] = int64(src.address)
}

// labels removes the leading label definitions of a line.
func labels(tokens []grammar.Token) (defs []string, rest []grammar.Token) {
	rest = tokens
	for len(rest) > 0 && rest[0].Kind == grammar.TOKEN_LABEL_DEF {
		defs = append(defs, rest[0].Text)
		rest = rest[1:]
	}
	return
}

// classify returns the shape of a line with its label definitions removed.
func classify(tokens []grammar.Token) (kind grammar.LineKind, err error) {
	kind, err = grammar.Classify(tokens)
	if err != nil && len(tokens) > 0 && tokens[0].Kind == grammar.TOKEN_SYMBOL {
		err = ErrMnemonicInvalid(tokens[0].Text)
	}
	return
}

// occupies reports whether a line holds an instruction, after any label
// definitions.
func occupies(words []string) bool {
	for _, word := range words {
		if strings.HasSuffix(word, ":") {
			continue
		}
		return !strings.HasPrefix(word, ".")
	}
	return false
}

// layout is the first pass over a line. It defines labels and equates, and
// returns the address following the line. A failing instruction line still
// takes one word.
func (asm *Assembler) layout(src *source) (next int, err error) {
	next = src.address
	asm.setLine(src)

	text := uncomment(chars(src.text))
	words := strings.Fields(text)
	if len(words) == 0 {
		src.skip = true
		return
	}

	defer func() {
		if err != nil && next == src.address && occupies(words) {
			next += internal.WORD_SIZE
		}
	}()

	if words[0] == ".equ" {
		src.skip = true
		err = asm.equate(words[1:])
		return
	}

	// Operand values do not change the layout, except for .org.
	expanded, xerr := asm.expand(text)
	if xerr != nil {
		expanded = exprRe.ReplaceAllString(text, "0")
	}

	lexer := Lexer{IsLabel: asm.isLabel}
	tokens, err := lexer.Tokens(expanded)
	if err != nil {
		return
	}

	defs, tokens := labels(tokens)
	for _, label := range defs {
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = src.address
	}

	if tokens[0].Kind == grammar.TOKEN_EOL {
		return
	}

	kind, err := classify(tokens)
	if err != nil {
		return
	}

	switch kind {
	case grammar.LINE_INSTRUCTION:
		next += internal.WORD_SIZE
	case grammar.LINE_DIRECTIVE:
		switch tokens[0].Text {
		case ".word":
			var values []grammar.Token
			values, err = operands(tokens[1:])
			if err != nil {
				return
			}
			next += len(values) * internal.WORD_SIZE
		case ".org":
			if xerr != nil {
				err = xerr
				return
			}
			if len(tokens) != 3 {
				err = ErrOrgSyntax
				return
			}
			var value int64
			value, err = asm.valueOf(tokens[1])
			if err != nil {
				return
			}
			if value < int64(src.address) || value%internal.WORD_SIZE != 0 || value > math.MaxUint32 {
				err = ErrOrgInvalid(value)
				return
			}
			next = int(value)
			src.skip = true
		default:
			err = ErrDirectiveInvalid(tokens[0].Text)
		}
	}

	return
}

// isLabel reports whether name is a defined label.
func (asm *Assembler) isLabel(name string) (ok bool) {
	_, ok = asm.Label[name]
	return
}

// instruction assembles the operands of a mnemonic at an address.
func (asm *Assembler) instruction(m isa.Mnemonic, tokens []grammar.Token, address int) (ins isa.Instruction, err error) {
	rule := grammar.RuleOf(m)
	err = rule.Validate(tokens)
	if err != nil {
		return
	}

	var args []int64
	for n, cat := range rule.All() {
		tok := tokens[n]
		switch cat {
		case grammar.CAT_REGISTER:
			reg, _ := isa.ParseRegister(tok.Text)
			args = append(args, int64(reg))
		case grammar.CAT_IMMEDIATE:
			var value int64
			value, err = asm.valueOf(tok)
			if err != nil {
				return
			}
			args = append(args, value)
		case grammar.CAT_LABEL:
			args = append(args, int64(asm.Label[tok.Text]-address))
		}
	}

	// `lw dest, offset(src)` is encoded as dest, src, offset.
	if rule.Family == grammar.FAMILY_RIR {
		args[1], args[2] = args[2], args[1]
	}

	ins, err = isa.Make(m, args...)

	return
}

// assemble is the second pass over a line.
func (asm *Assembler) assemble(src *source) (line Line, err error) {
	asm.setLine(src)

	line = Line{
		LineNo:  src.lineNo,
		Address: src.address,
		Text:    src.text,
	}

	expanded, err := asm.expand(uncomment(chars(src.text)))
	if err != nil {
		return
	}

	lexer := Lexer{IsLabel: asm.isLabel}
	tokens, err := lexer.Tokens(expanded)
	if err != nil {
		return
	}

	_, tokens = labels(tokens)
	if tokens[0].Kind == grammar.TOKEN_EOL {
		return
	}

	kind, err := classify(tokens)
	if err != nil {
		return
	}

	switch kind {
	case grammar.LINE_INSTRUCTION:
		m, _ := isa.ParseMnemonic(tokens[0].Text)
		line.Instruction, err = asm.instruction(m, tokens[1:], src.address)
		if err != nil {
			return
		}
		line.Words = []uint32{isa.Encode(line.Instruction)}
	case grammar.LINE_DIRECTIVE:
		// Only .word reaches the second pass.
		var values []grammar.Token
		values, err = operands(tokens[1:])
		if err != nil {
			return
		}
		for _, tok := range values {
			var value int64
			value, err = asm.valueOf(tok)
			if err != nil {
				return
			}
			if value < -int64(1)<<31 || value > math.MaxUint32 {
				err = schema.ErrImmediateOutOfRange{Value: value, Range: wordRange}
				return
			}
			line.Words = append(line.Words, uint32(value))
		}
	}

	return
}

// Parse assembles an input stream into a Program. Lines that fail are
// reported as joined ErrSyntax errors; the Program holds every other line.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var sources []source

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		sources = append(sources, source{lineNo: len(sources) + 1, text: scanner.Text()})
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	var failed []ErrSyntax
	report := func(src *source, err error) {
		src.skip = true
		failed = append(failed, ErrSyntax{LineNo: src.lineNo, Line: src.text, Err: err})
		if asm.Verbose {
			log.Printf("%v: %v\n", src.lineNo, err)
		}
	}

	address := 0
	for n := range sources {
		src := &sources[n]
		src.address = address
		next, err := asm.layout(src)
		if err != nil {
			report(src, err)
		}
		address = next
	}

	prog = &Program{}
	for n := range sources {
		src := &sources[n]
		if src.skip {
			continue
		}

		if asm.Verbose {
			log.Printf("%v: %#06x %v\n", src.lineNo, src.address, src.text)
		}

		line, err := asm.assemble(src)
		if err != nil {
			report(src, err)
			continue
		}
		if len(line.Words) == 0 {
			continue
		}
		prog.Lines = append(prog.Lines, line)
	}

	slices.SortStableFunc(failed, func(a, b ErrSyntax) int {
		return cmp.Compare(a.LineNo, b.LineNo)
	})

	errs := make([]error, len(failed))
	for n, failure := range failed {
		errs[n] = failure
	}
	err = errors.Join(errs...)

	return
}
