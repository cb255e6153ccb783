package parser

import (
	"strconv"
	"strings"

	"x64lab/model"
)

// Parser lifts one input line into a model.Input per the §4.1 grammar:
// an Instruction, a RegisterQuery, or a MemoryQuery. Mnemonics never
// overlap register names, so the three alternatives are distinguished
// by the first word alone.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse is the package's single entry point: tokenize, then dispatch on
// the leading word.
func Parse(line string) (model.Input, error) {
	p := &Parser{tokens: NewLexer(line).TokenizeAll()}
	return p.parseInput()
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) parseInput() (model.Input, error) {
	first := p.peek()
	if first.Type == TokenEOF {
		return model.Input{}, newError(first.Pos, "empty input")
	}

	if kind, ok := model.KindByMnemonic(first.Literal); ok {
		p.next()
		return p.parseInstruction(kind)
	}
	if first.Literal == "memory" {
		p.next()
		return p.parseMemoryQuery()
	}
	if reg, ok := model.RegisterByName(first.Literal); ok {
		p.next()
		return p.parseRegisterQuery(reg)
	}
	return model.Input{}, newError(first.Pos, "unrecognized mnemonic or register %q", first.Literal)
}

// parseInstruction consumes zero, one, or two operands, separated by
// whitespace with an optional comma. Arity is NOT enforced here — the
// parser is deliberately permissive; model.CheckShape does that at
// interpretation/encoding time.
func (p *Parser) parseInstruction(kind model.InstructionKind) (model.Input, error) {
	var operands []model.Operand

	for len(operands) < 2 {
		if p.peek().Type == TokenComma {
			p.next()
			continue
		}
		if p.peek().Type == TokenEOF {
			break
		}
		tok := p.next()
		op, err := parseOperand(tok)
		if err != nil {
			return model.Input{}, err
		}
		operands = append(operands, op)
	}

	if p.peek().Type != TokenEOF {
		tok := p.peek()
		return model.Input{}, newError(tok.Pos, "unexpected trailing input %q", tok.Literal)
	}

	return model.Input{
		Kind:        model.InputInstruction,
		Instruction: model.Instruction{Kind: kind, Operands: operands},
	}, nil
}

func parseOperand(tok Token) (model.Operand, error) {
	word := tok.Literal

	if strings.HasPrefix(word, "xmm") {
		digits := word[len("xmm"):]
		n, err := strconv.Atoi(digits)
		if err != nil || digits == "" {
			return model.Operand{}, newError(tok.Pos, "malformed xmm register %q", word)
		}
		if n < 0 || n > 15 {
			return model.Operand{}, newError(tok.Pos, "xmm register index out of range: %d", n)
		}
		return model.XMM(n), nil
	}

	if reg, ok := model.RegisterByName(word); ok {
		return model.GPR(reg), nil
	}

	if word != "" && isAllDigits(word) {
		v, err := strconv.ParseInt(word, 10, 64)
		if err != nil || v < 0 || v > int64(^uint32(0)>>1) {
			return model.Operand{}, newError(tok.Pos, "immediate out of range: %q", word)
		}
		return model.Imm32(int32(v)), nil
	}

	return model.Operand{}, newError(tok.Pos, "unrecognized operand %q", word)
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (p *Parser) parseRegisterQuery(reg model.Register) (model.Input, error) {
	opts := model.DisplayOptions{}
	if p.peek().Type == TokenWord && p.peek().Literal == "-h" {
		p.next()
		opts.HumanReadable = true
	}
	if p.peek().Type != TokenEOF {
		tok := p.peek()
		return model.Input{}, newError(tok.Pos, "unexpected trailing input %q", tok.Literal)
	}
	return model.Input{Kind: model.InputRegisterQuery, Register: reg, RegisterOptions: opts}, nil
}

func (p *Parser) parseMemoryQuery() (model.Input, error) {
	addrTok := p.next()
	if !strings.HasPrefix(addrTok.Literal, "0x") {
		return model.Input{}, newError(addrTok.Pos, "expected 0x<address>, got %q", addrTok.Literal)
	}
	addr, err := strconv.ParseUint(addrTok.Literal[2:], 16, 64)
	if err != nil {
		return model.Input{}, newError(addrTok.Pos, "malformed hex address %q", addrTok.Literal)
	}

	opts := model.DefaultMemoryDumpOptions(addr)

	if p.peek().Type == TokenWord && (p.peek().Literal == "-s" || p.peek().Literal == "--size") {
		p.next()
		sizeTok := p.next()
		size, err := strconv.Atoi(sizeTok.Literal)
		if err != nil || size < 0 {
			return model.Input{}, newError(sizeTok.Pos, "malformed size %q", sizeTok.Literal)
		}
		opts.Size = size
	}

	if tok := p.peek(); tok.Type == TokenWord {
		switch tok.Literal {
		case "-x", "--hex":
			opts.Format = model.FormatHex
			opts.FormatSet = true
			p.next()
		case "-d", "--decimal":
			opts.Format = model.FormatDecimal
			opts.FormatSet = true
			p.next()
		}
	}

	if p.peek().Type != TokenEOF {
		tok := p.peek()
		return model.Input{}, newError(tok.Pos, "unexpected trailing input %q", tok.Literal)
	}

	return model.Input{Kind: model.InputMemoryQuery, Memory: opts}, nil
}
