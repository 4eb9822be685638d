// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clvm implements the deterministic, cost-bounded evaluator for
// puzzle programs.  A program and its environment reduce to a value while a
// running cost total accrues per operator; evaluation fails once the
// caller's cost limit is exceeded, which is the sole termination guarantee.
package clvm

import (
	"fmt"
	"math/bits"

	"github.com/peasproject/peasd/core/sexp"
)

// Engine evaluates one program.  Engines are single use and not safe for
// concurrent access; RunProgram constructs one per call.
type Engine struct {
	costLimit uint64
	cost      uint64
}

// RunProgram evaluates the passed program against the environment env and
// returns the resulting value together with the total cost consumed.  The
// run fails with ErrCostExceeded once the running cost passes costLimit.
// Evaluation is fully deterministic: the same program, environment and
// limit always produce the same value, cost and error.
func RunProgram(prog *sexp.Program, env *sexp.Node, costLimit uint64) (*sexp.Node, uint64, error) {
	if env == nil {
		env = sexp.Nil()
	}
	e := &Engine{costLimit: costLimit}
	log.Tracef("Running program %s with cost limit %d",
		newLogClosure(func() string {
			return prog.TreeHash().String()
		}), costLimit)
	result, err := e.run(prog.Root(), env)
	if err != nil {
		return nil, e.cost, err
	}
	return result, e.cost, nil
}

// frameKind selects what a pending frame does when popped off the run
// loop's stack.
type frameKind int

const (
	// frameEval evaluates an expression against an environment and
	// pushes the resulting value.
	frameEval frameKind = iota

	// frameApply pops its already evaluated operands off the value
	// stack and dispatches its operator on them.
	frameApply
)

type frame struct {
	kind frameKind
	expr *sexp.Node // frameEval
	env  *sexp.Node // frameEval
	op   []byte     // frameApply
	argc int        // frameApply
}

// run reduces an expression against env.  An atom is an environment path.
// A pair applies the expression in its first position to the operand list
// in its rest.
//
// Reduction runs over explicit frame and value stacks rather than the call
// stack, so evaluation depth is bounded by the cost limit alone and deeply
// nested programs cannot exhaust goroutine stack.
func (e *Engine) run(expr, env *sexp.Node) (*sexp.Node, error) {
	frames := []frame{{kind: frameEval, expr: expr, env: env}}
	var vals []*sexp.Node
	for len(frames) > 0 {
		f := frames[len(frames)-1]
		frames = frames[:len(frames)-1]

		if f.kind == frameApply {
			items := make([]*sexp.Node, f.argc)
			copy(items, vals[len(vals)-f.argc:])
			vals = vals[:len(vals)-f.argc]
			if len(f.op) == 1 && f.op[0] == opApply {
				if len(items) != 2 {
					return nil, evalError(ErrArity, fmt.Sprintf(
						"a: takes exactly 2 operands, got %d",
						len(items)))
				}
				if err := e.charge(applyCost); err != nil {
					return nil, err
				}
				frames = append(frames, frame{
					kind: frameEval, expr: items[0], env: items[1],
				})
				continue
			}
			v, err := e.dispatch(f.op, sexp.NewList(items...))
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
			continue
		}

		op, args, ok := f.expr.Pair()
		if !ok {
			b, _ := f.expr.Bytes()
			v, err := e.pathLookup(b, f.env)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
			continue
		}

		if inner, innerArgs, isPair := op.Pair(); isPair {
			// The ((X) . args) form dispatches X on its unevaluated
			// operands.  X must stand alone: a lone atom with a nil
			// tail.
			if !inner.IsAtom() || !innerArgs.IsNil() {
				return nil, evalError(ErrTypeMismatch,
					"in ((X)...) syntax X must be lone atom")
			}
			opBytes, _ := inner.Bytes()
			if len(opBytes) == 1 && opBytes[0] == opApply {
				items, err := listArgs("a", args, 2)
				if err != nil {
					return nil, err
				}
				if err := e.charge(applyCost); err != nil {
					return nil, err
				}
				frames = append(frames, frame{
					kind: frameEval, expr: items[0], env: items[1],
				})
				continue
			}
			v, err := e.dispatch(opBytes, args)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
			continue
		}

		opBytes, _ := op.Bytes()
		if len(opBytes) == 1 && opBytes[0] == opQuote {
			if err := e.charge(quoteCost); err != nil {
				return nil, err
			}
			vals = append(vals, args)
			continue
		}

		// Every operator other than quote is strict: operands
		// evaluate left to right before dispatch.  Pushing them in
		// reverse keeps the pop order left to right, with the apply
		// frame running once all their values are on the stack.
		var operands []*sexp.Node
		for args.IsPair() {
			first, rest, _ := args.Pair()
			operands = append(operands, first)
			args = rest
		}
		if !args.IsNil() {
			return nil, evalError(ErrTypeMismatch, "bad operand list")
		}
		frames = append(frames, frame{
			kind: frameApply, op: opBytes, argc: len(operands),
		})
		for i := len(operands) - 1; i >= 0; i-- {
			frames = append(frames, frame{
				kind: frameEval, expr: operands[i], env: f.env,
			})
		}
	}
	return vals[0], nil
}

// dispatch applies a single-byte opcode to an operand list via the handler
// table.  quote and apply are resolved inside the run loop; quote reaches
// here only through the ((X) . args) form, where it still returns its raw
// operands.
func (e *Engine) dispatch(opBytes []byte, args *sexp.Node) (*sexp.Node, error) {
	if len(opBytes) != 1 {
		return nil, evalError(ErrUnknownOperator,
			fmt.Sprintf("unknown operator 0x%x", opBytes))
	}
	if opBytes[0] == opQuote {
		if err := e.charge(quoteCost); err != nil {
			return nil, err
		}
		return args, nil
	}
	handler, ok := opHandlers[opBytes[0]]
	if !ok {
		return nil, evalError(ErrUnknownOperator,
			fmt.Sprintf("unknown operator 0x%x", opBytes))
	}
	return handler.fn(e, args)
}

// pathLookup resolves an environment path atom.  The path's bits below the
// most significant set bit select pair branches from the environment, least
// significant bit first: 0 descends into first, 1 into rest.  The empty
// atom and the path 0 both resolve to nil.
func (e *Engine) pathLookup(path []byte, env *sexp.Node) (*sexp.Node, error) {
	cost := uint64(pathLookupBaseCost)

	// Leading zero bytes carry no path bits but still cost.
	i := 0
	for i < len(path) && path[i] == 0 {
		cost += pathLookupCostPerZero
		i++
	}
	if err := e.charge(cost); err != nil {
		return nil, err
	}
	if i == len(path) {
		return sexp.Nil(), nil
	}

	// Count the path legs below the top marker bit.
	legs := (len(path)-i-1)*8 + bits.Len8(path[i]) - 1
	if err := e.charge(uint64(legs) * pathLookupCostPerLeg); err != nil {
		return nil, err
	}

	node := env
	for bit := 0; bit < legs; bit++ {
		byteIdx := len(path) - 1 - bit/8
		right := path[byteIdx]&(byte(1)<<uint(bit%8)) != 0
		first, rest, ok := node.Pair()
		if !ok {
			return nil, evalError(ErrPathIntoAtom,
				fmt.Sprintf("path 0x%x into atom", path))
		}
		if right {
			node = rest
		} else {
			node = first
		}
	}
	return node, nil
}
