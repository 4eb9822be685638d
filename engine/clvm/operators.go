// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clvm

import (
	"fmt"
	"math/big"

	"github.com/peasproject/peasd/common/hash"
	"github.com/peasproject/peasd/core/sexp"
)

// Operator opcodes.  The numbering is fixed by the on-chain puzzle format.
const (
	opQuote  = 0x01
	opApply  = 0x02
	opIf     = 0x03
	opCons   = 0x04
	opFirst  = 0x05
	opRest   = 0x06
	opListp  = 0x07
	opRaise  = 0x08
	opEq     = 0x09
	opSha256 = 0x0b
	opStrlen = 0x0d
	opConcat = 0x0e
	opAdd    = 0x10
	opSub    = 0x11
	opMul    = 0x12
	opDiv    = 0x13
	opGr     = 0x15
)

// opHandler binds an operator name to its reduction function.  Handlers
// receive the already evaluated operand list (except when invoked through
// the ((X) . args) form, which passes operands through unevaluated).
type opHandler struct {
	name string
	fn   func(e *Engine, args *sexp.Node) (*sexp.Node, error)
}

var opHandlers = map[byte]opHandler{
	opIf:     {"i", opIfFn},
	opCons:   {"c", opConsFn},
	opFirst:  {"f", opFirstFn},
	opRest:   {"r", opRestFn},
	opListp:  {"l", opListpFn},
	opRaise:  {"x", opRaiseFn},
	opEq:     {"=", opEqFn},
	opSha256: {"sha256", opSha256Fn},
	opStrlen: {"strlen", opStrlenFn},
	opConcat: {"concat", opConcatFn},
	opAdd:    {"+", opAddFn},
	opSub:    {"-", opSubFn},
	opMul:    {"*", opMulFn},
	opDiv:    {"/", opDivFn},
	opGr:     {">", opGrFn},
}

var nodeOne = sexp.NewInt64(1)

// listArgs flattens an operand list, optionally enforcing an exact operand
// count.  Pass want < 0 to accept any count.
func listArgs(name string, args *sexp.Node, want int) ([]*sexp.Node, error) {
	items, ok := args.ProperList()
	if !ok {
		return nil, evalError(ErrTypeMismatch,
			fmt.Sprintf("%s: operand list is not a proper list", name))
	}
	if want >= 0 && len(items) != want {
		return nil, evalError(ErrArity,
			fmt.Sprintf("%s: takes exactly %d operands, got %d",
				name, want, len(items)))
	}
	return items, nil
}

// atomArg reads the raw bytes of an operand, failing on a pair.
func atomArg(name string, n *sexp.Node) ([]byte, error) {
	b, err := n.Bytes()
	if err != nil {
		return nil, evalError(ErrTypeMismatch,
			fmt.Sprintf("%s: operand must be an atom", name))
	}
	return b, nil
}

// intArg reads the canonical integer value of an operand, failing on a
// pair.  The second return is the operand's encoded length, which several
// cost formulas need.
func intArg(name string, n *sexp.Node) (*big.Int, int, error) {
	b, err := atomArg(name, n)
	if err != nil {
		return nil, 0, err
	}
	return sexp.IntFromBytes(b), len(b), nil
}

func opIfFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("i", args, 3)
	if err != nil {
		return nil, err
	}
	if err := e.charge(ifCost); err != nil {
		return nil, err
	}
	if items[0].IsNil() {
		return items[2], nil
	}
	return items[1], nil
}

func opConsFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("c", args, 2)
	if err != nil {
		return nil, err
	}
	if err := e.charge(consCost); err != nil {
		return nil, err
	}
	return sexp.NewPair(items[0], items[1]), nil
}

func opFirstFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("f", args, 1)
	if err != nil {
		return nil, err
	}
	if err := e.charge(firstCost); err != nil {
		return nil, err
	}
	first, ferr := items[0].First()
	if ferr != nil {
		return nil, evalError(ErrTypeMismatch, "f: first of non-pair")
	}
	return first, nil
}

func opRestFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("r", args, 1)
	if err != nil {
		return nil, err
	}
	if err := e.charge(restCost); err != nil {
		return nil, err
	}
	rest, rerr := items[0].Rest()
	if rerr != nil {
		return nil, evalError(ErrTypeMismatch, "r: rest of non-pair")
	}
	return rest, nil
}

func opListpFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("l", args, 1)
	if err != nil {
		return nil, err
	}
	if err := e.charge(listpCost); err != nil {
		return nil, err
	}
	if items[0].IsPair() {
		return nodeOne, nil
	}
	return sexp.Nil(), nil
}

func opRaiseFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	return nil, evalError(ErrRaise,
		fmt.Sprintf("clvm raise: %s", sexp.Disassemble(args)))
}

func opEqFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("=", args, 2)
	if err != nil {
		return nil, err
	}
	b0, err := atomArg("=", items[0])
	if err != nil {
		return nil, err
	}
	b1, err := atomArg("=", items[1])
	if err != nil {
		return nil, err
	}
	cost := uint64(eqBaseCost) + uint64(len(b0)+len(b1))*eqCostPerByte
	if err := e.charge(cost); err != nil {
		return nil, err
	}
	if len(b0) == len(b1) && string(b0) == string(b1) {
		return nodeOne, nil
	}
	return sexp.Nil(), nil
}

func opSha256Fn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("sha256", args, -1)
	if err != nil {
		return nil, err
	}
	var buf []byte
	cost := uint64(sha256BaseCost)
	for _, item := range items {
		b, err := atomArg("sha256", item)
		if err != nil {
			return nil, err
		}
		cost += sha256CostPerArg + uint64(len(b))*sha256CostPerByte
		buf = append(buf, b...)
	}
	if err := e.charge(cost); err != nil {
		return nil, err
	}
	return sexp.NewAtom(hash.HashB(buf)), nil
}

func opStrlenFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("strlen", args, 1)
	if err != nil {
		return nil, err
	}
	b, err := atomArg("strlen", items[0])
	if err != nil {
		return nil, err
	}
	cost := uint64(strlenBaseCost) + uint64(len(b))*strlenCostPerByte
	if err := e.charge(cost); err != nil {
		return nil, err
	}
	return sexp.NewInt64(int64(len(b))), nil
}

func opConcatFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("concat", args, -1)
	if err != nil {
		return nil, err
	}
	var buf []byte
	cost := uint64(concatBaseCost)
	for _, item := range items {
		b, err := atomArg("concat", item)
		if err != nil {
			return nil, err
		}
		cost += concatCostPerArg + uint64(len(b))*concatCostPerByte
		buf = append(buf, b...)
	}
	if err := e.charge(cost); err != nil {
		return nil, err
	}
	return sexp.NewAtom(buf), nil
}

func opAddFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("+", args, -1)
	if err != nil {
		return nil, err
	}
	sum := new(big.Int)
	cost := uint64(arithBaseCost)
	for _, item := range items {
		v, size, err := intArg("+", item)
		if err != nil {
			return nil, err
		}
		cost += arithCostPerArg + uint64(size)*arithCostPerByte
		sum.Add(sum, v)
	}
	if err := e.charge(cost); err != nil {
		return nil, err
	}
	return sexp.NewInt(sum), nil
}

func opSubFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("-", args, -1)
	if err != nil {
		return nil, err
	}
	diff := new(big.Int)
	cost := uint64(arithBaseCost)
	for i, item := range items {
		v, size, err := intArg("-", item)
		if err != nil {
			return nil, err
		}
		cost += arithCostPerArg + uint64(size)*arithCostPerByte
		if i == 0 {
			diff.Set(v)
		} else {
			diff.Sub(diff, v)
		}
	}
	if err := e.charge(cost); err != nil {
		return nil, err
	}
	return sexp.NewInt(diff), nil
}

func opMulFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("*", args, -1)
	if err != nil {
		return nil, err
	}
	product := big.NewInt(1)
	cost := uint64(mulBaseCost)
	prevSize := 0
	for i, item := range items {
		v, size, err := intArg("*", item)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			cost += mulCostPerOp +
				uint64(prevSize+size)*mulLinearCost +
				uint64(prevSize*size)/mulSquareDivide
		}
		product.Mul(product, v)
		prevSize = len(sexp.IntToBytes(product))
	}
	if err := e.charge(cost); err != nil {
		return nil, err
	}
	return sexp.NewInt(product), nil
}

func opDivFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs("/", args, 2)
	if err != nil {
		return nil, err
	}
	a, asize, err := intArg("/", items[0])
	if err != nil {
		return nil, err
	}
	b, bsize, err := intArg("/", items[1])
	if err != nil {
		return nil, err
	}
	cost := uint64(divBaseCost) + uint64(asize+bsize)*divCostPerByte
	if err := e.charge(cost); err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, evalError(ErrDivisionByZero, "/: division by zero")
	}

	// Floor division: the quotient rounds toward negative infinity.
	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, bigOne)
	}
	return sexp.NewInt(q), nil
}

func opGrFn(e *Engine, args *sexp.Node) (*sexp.Node, error) {
	items, err := listArgs(">", args, 2)
	if err != nil {
		return nil, err
	}
	a, asize, err := intArg(">", items[0])
	if err != nil {
		return nil, err
	}
	b, bsize, err := intArg(">", items[1])
	if err != nil {
		return nil, err
	}
	cost := uint64(grBaseCost) + uint64(asize+bsize)*grCostPerByte
	if err := e.charge(cost); err != nil {
		return nil, err
	}
	if a.Cmp(b) > 0 {
		return nodeOne, nil
	}
	return sexp.Nil(), nil
}

var bigOne = big.NewInt(1)
