// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sexp

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// keywords is the operator name table, indexed by opcode.  Entries holding
// "." are unassigned opcodes.  The names and numbering match the assembler
// the original puzzle sources were written for, so assembled programs are
// bit-compatible.
var keywords = []string{
	".", "q", "a", "i", "c", "f", "r", "l", "x",
	"=", ">s", "sha256", "substr", "strlen", "concat", ".",
	"+", "-", "*", "/", "divmod", ">", "ash", "lsh",
	"logand", "logior", "logxor", "lognot", ".",
	"point_add", "pubkey_for_exp", ".",
	"not", "any", "all", ".",
	"softfork",
}

var (
	keywordToAtom = make(map[string]byte)
	atomToKeyword = make(map[byte]string)
)

func init() {
	for op, name := range keywords {
		if name == "." {
			continue
		}
		keywordToAtom[name] = byte(op)
		atomToKeyword[byte(op)] = name
	}
}

// token kinds produced by the tokenizer.
const (
	tokLParen = iota
	tokRParen
	tokDot
	tokAtom
	tokString
	tokEOF
)

type token struct {
	kind int
	text string
	pos  int
}

// tokenizer splits assembler source into parens, dots and atom tokens.
type tokenizer struct {
	src string
	pos int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func (tz *tokenizer) next() (token, error) {
	for tz.pos < len(tz.src) && isSpace(tz.src[tz.pos]) {
		tz.pos++
	}
	if tz.pos >= len(tz.src) {
		return token{kind: tokEOF, pos: tz.pos}, nil
	}
	start := tz.pos
	switch c := tz.src[tz.pos]; c {
	case '(':
		tz.pos++
		return token{kind: tokLParen, pos: start}, nil
	case ')':
		tz.pos++
		return token{kind: tokRParen, pos: start}, nil
	case '"', '\'':
		tz.pos++
		for tz.pos < len(tz.src) && tz.src[tz.pos] != c {
			tz.pos++
		}
		if tz.pos >= len(tz.src) {
			return token{}, sexpError(ErrSyntax,
				fmt.Sprintf("unterminated string starting at %d", start))
		}
		text := tz.src[start+1 : tz.pos]
		tz.pos++
		return token{kind: tokString, text: text, pos: start}, nil
	}
	for tz.pos < len(tz.src) {
		c := tz.src[tz.pos]
		if isSpace(c) || c == '(' || c == ')' {
			break
		}
		tz.pos++
	}
	text := tz.src[start:tz.pos]
	if text == "." {
		return token{kind: tokDot, pos: start}, nil
	}
	return token{kind: tokAtom, text: text, pos: start}, nil
}

// Assemble parses source text in the literal puzzle language into an
// expression tree: nested parenthesized lists, dotted-pair tails, signed
// decimal integers, 0x hex atoms, quoted strings and operator names.  It
// performs no evaluation.
func Assemble(src string) (*Node, error) {
	tz := &tokenizer{src: src}
	tok, err := tz.next()
	if err != nil {
		return nil, err
	}
	node, err := parseExpr(tz, tok)
	if err != nil {
		return nil, err
	}
	tok, err = tz.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokEOF {
		return nil, sexpError(ErrSyntax,
			fmt.Sprintf("trailing garbage at %d", tok.pos))
	}
	return node, nil
}

func parseExpr(tz *tokenizer, tok token) (*Node, error) {
	switch tok.kind {
	case tokLParen:
		return parseList(tz)
	case tokAtom:
		return parseAtomToken(tok)
	case tokString:
		return NewAtom([]byte(tok.text)), nil
	case tokEOF:
		return nil, sexpError(ErrSyntax, "unexpected end of source")
	default:
		return nil, sexpError(ErrSyntax,
			fmt.Sprintf("unexpected token at %d", tok.pos))
	}
}

func parseList(tz *tokenizer) (*Node, error) {
	tok, err := tz.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokRParen:
		return Nil(), nil
	case tokDot:
		return nil, sexpError(ErrSyntax,
			fmt.Sprintf("unexpected dot at %d", tok.pos))
	case tokEOF:
		return nil, sexpError(ErrSyntax, "unbalanced parentheses")
	}
	first, err := parseExpr(tz, tok)
	if err != nil {
		return nil, err
	}

	tok, err = tz.next()
	if err != nil {
		return nil, err
	}
	rest, err := parseListTail(tz, tok)
	if err != nil {
		return nil, err
	}
	return NewPair(first, rest), nil
}

func parseListTail(tz *tokenizer, tok token) (*Node, error) {
	switch tok.kind {
	case tokRParen:
		return Nil(), nil
	case tokEOF:
		return nil, sexpError(ErrSyntax, "unbalanced parentheses")
	case tokDot:
		tok2, err := tz.next()
		if err != nil {
			return nil, err
		}
		rest, err := parseExpr(tz, tok2)
		if err != nil {
			return nil, err
		}
		tok2, err = tz.next()
		if err != nil {
			return nil, err
		}
		if tok2.kind != tokRParen {
			return nil, sexpError(ErrSyntax,
				fmt.Sprintf("expected ) after dotted tail at %d", tok2.pos))
		}
		return rest, nil
	}
	first, err := parseExpr(tz, tok)
	if err != nil {
		return nil, err
	}
	tok, err = tz.next()
	if err != nil {
		return nil, err
	}
	rest, err := parseListTail(tz, tok)
	if err != nil {
		return nil, err
	}
	return NewPair(first, rest), nil
}

var decimalDigits = "0123456789"

func isDecimal(text string) bool {
	if len(text) == 0 {
		return false
	}
	i := 0
	if text[0] == '+' || text[0] == '-' {
		i = 1
	}
	if i == len(text) {
		return false
	}
	for ; i < len(text); i++ {
		if strings.IndexByte(decimalDigits, text[i]) < 0 {
			return false
		}
	}
	return true
}

func parseAtomToken(tok token) (*Node, error) {
	text := tok.text
	if isDecimal(text) {
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, sexpError(ErrSyntax,
				fmt.Sprintf("invalid integer literal %q at %d", text, tok.pos))
		}
		return NewInt(v), nil
	}
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		h := text[2:]
		if len(h)%2 == 1 {
			h = "0" + h
		}
		b, err := hex.DecodeString(h)
		if err != nil {
			return nil, sexpError(ErrSyntax,
				fmt.Sprintf("invalid hex literal %q at %d", text, tok.pos))
		}
		return NewAtom(b), nil
	}
	name := text
	if strings.HasPrefix(name, "#") {
		name = name[1:]
	}
	if op, ok := keywordToAtom[name]; ok {
		return NewAtom([]byte{op}), nil
	}
	// Unknown symbols assemble to their text bytes, matching the original
	// assembler.
	return NewAtom([]byte(text)), nil
}

// Disassemble renders an expression in the assembler's literal syntax.
// Single-byte atoms in operator position print as operator names; other
// atoms print as signed decimal when short, 0x hex otherwise.
func Disassemble(n *Node) string {
	var sb strings.Builder
	disasmNode(&sb, n, false)
	return sb.String()
}

func disasmNode(sb *strings.Builder, n *Node, opPos bool) {
	if n.IsPair() {
		sb.WriteByte('(')
		disasmNode(sb, n.first, true)
		rest := n.rest
		for rest.IsPair() {
			sb.WriteByte(' ')
			disasmNode(sb, rest.first, false)
			rest = rest.rest
		}
		if !rest.IsNil() {
			sb.WriteString(" . ")
			disasmNode(sb, rest, false)
		}
		sb.WriteByte(')')
		return
	}
	if n.IsNil() {
		sb.WriteString("()")
		return
	}
	if opPos && len(n.atom) == 1 {
		if name, ok := atomToKeyword[n.atom[0]]; ok {
			sb.WriteString(name)
			return
		}
	}
	if len(n.atom) <= 4 {
		sb.WriteString(IntFromBytes(n.atom).String())
		return
	}
	fmt.Fprintf(sb, "0x%x", n.atom)
}
