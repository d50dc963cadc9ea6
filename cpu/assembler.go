// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler is a single pass assembler for the accumulator machine.
//
//	DAT name literal   ; declare a variable, allocated down from VARIABLE_TOP
//	LDA name           ; MNEMONIC [OPERAND]
//	ADD $(name + 1)    ; compile-time expression
//	end                ; stop reading
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of generated instruction lines.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of numeric equates.
	Variables map[string]int    // Map of variable names to addresses.
	Data      map[int]Word      // Initial variable contents.

	nextVariable int
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var (
	reName       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// valueOf returns the value of a numeric word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// operandOf returns the operand field for a word: a declared variable's
// address, an equate, or a numeric literal.
func (asm *Assembler) operandOf(word string) (operand int, err error) {
	addr, ok := asm.Variables[word]
	if ok {
		operand = addr
		return
	}

	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}

	operand, err = asm.valueOf(word)
	if err != nil {
		if reName.MatchString(word) {
			err = ErrVariableMissing(word)
		}
		return
	}

	operand &= OPERAND_MASK
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v int
		v, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	for key, addr := range asm.Variables {
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine evaluates expressions in a line and splits it into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	return
}

// parseData handles `DAT name literal`.
func (asm *Assembler) parseData(words []string) (err error) {
	if len(words) != 3 || !reName.MatchString(words[1]) {
		err = ErrDataSyntax
		return
	}

	name := words[1]
	_, ok := asm.Variables[name]
	if ok {
		err = ErrVariableDuplicate
		return
	}

	literal := words[2]
	equate, ok := asm.Equate[literal]
	if ok {
		literal = equate
	}
	value, err := asm.valueOf(literal)
	if err != nil {
		return
	}

	addr := asm.nextVariable
	if addr < len(asm.Lines) {
		err = ErrProgramTooLarge
		return
	}

	asm.Variables[name] = addr
	asm.Data[addr] = ToUnsigned(value)
	asm.nextVariable--

	return
}

// parseWords assembles the words of a single instruction line.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	op, ok := opcodeMap[strings.ToUpper(words[0])]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	if len(words) > 2 {
		err = ErrOpcodeExtraArgs
		return
	}

	var operand int
	if len(words) == 2 {
		operand, err = asm.operandOf(words[1])
		if err != nil {
			return
		}
	} else if op.Addressed() {
		err = ErrOperandMissing
		return
	}

	ip := len(asm.Lines)
	if ip > asm.nextVariable {
		err = ErrProgramTooLarge
		return
	}

	asm.Lines = append(asm.Lines, Line{
		LineNo: lineno,
		Ip:     ip,
		Words:  words,
		Code:   MakeInstruction(op, operand),
	})

	return
}

// Parse parses an input stream into a Program.
// Reading stops after an `end` line or at end of input. If input is a
// *bufio.Reader, nothing past the `end` line is consumed from it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	rd, ok := input.(*bufio.Reader)
	if !ok {
		rd = bufio.NewReader(input)
	}

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Lines = asm.Lines[:0]
	asm.Variables = make(map[string]int)
	asm.Data = make(map[int]Word)
	asm.nextVariable = VARIABLE_TOP
	asm.Equate = map[string]string{}
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for {
		text, rerr := rd.ReadString('\n')
		if len(text) == 0 && rerr != nil {
			if rerr != io.EOF {
				err = rerr
			}
			break
		}
		lineno += 1

		if asm.Verbose {
			logrus.WithFields(logrus.Fields{"line": lineno}).Info(strings.TrimRight(text, "\r\n"))
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		if len(words) == 0 {
			if rerr != nil {
				break
			}
			continue
		}

		if strings.EqualFold(words[0], "end") {
			if len(words) > 1 {
				err = ErrOpcodeExtraArgs
				return
			}
			break
		}

		if strings.EqualFold(words[0], "DAT") {
			err = asm.parseData(words)
		} else {
			err = asm.parseWords(words, lineno)
		}
		if err != nil {
			return
		}

		if rerr != nil {
			break
		}
	}

	prog = &Program{
		Lines:     slices.Clone(asm.Lines),
		Variables: maps.Clone(asm.Variables),
		Data:      maps.Clone(asm.Data),
	}

	return
}
