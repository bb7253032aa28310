// Copyright the proplog authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package logic

// This file implements conversion to conjunctive and disjunctive normal
// form.  Both conversions proceed through the same fixed elimination order:
// first equivalences and exclusive disjunctions are expanded into and/or/not,
// then implications are eliminated, then negations are pushed down to the
// literal level via De Morgan's laws, and finally one connective is
// distributed over the other.  No simplification is performed afterwards;
// callers chain Simplify themselves if a reduced form is desired.  In the
// worst case the result is exponentially larger than the input, which is
// inherent to the transformation.

// ToCNF converts a formula into conjunctive normal form: a conjunction of
// disjunctions of literals, with no remaining IMPLIES, IFF or XOR nodes and
// negation applied only directly to atoms.
func ToCNF(f Formula) Formula {
	return distributeCNF(nnf(eliminateImplies(eliminateEquiv(f))))
}

// ToDNF converts a formula into disjunctive normal form: a disjunction of
// conjunctions of literals, with no remaining IMPLIES, IFF or XOR nodes and
// negation applied only directly to atoms.
func ToDNF(f Formula) Formula {
	return distributeDNF(nnf(eliminateImplies(eliminateEquiv(f))))
}

// eliminateEquiv expands every IFF and XOR node into its and/or/not
// expansion: "a <-> b" becomes "(a & b) | (~a & ~b)", whilst "a ^ b" becomes
// "(a & ~b) | (~a & b)".
func eliminateEquiv(f Formula) Formula {
	switch t := f.(type) {
	case Constant, Atom:
		return f
	case Not:
		return Not{eliminateEquiv(t.Operand)}
	case Binary:
		var (
			lhs = eliminateEquiv(t.Lhs)
			rhs = eliminateEquiv(t.Rhs)
		)
		//
		switch t.Kind {
		case IFF:
			return Binary{OR,
				Binary{AND, lhs, rhs},
				Binary{AND, Not{lhs}, Not{rhs}}}
		case XOR:
			return Binary{OR,
				Binary{AND, lhs, Not{rhs}},
				Binary{AND, Not{lhs}, rhs}}
		default:
			return Binary{t.Kind, lhs, rhs}
		}
	default:
		panic("unreachable")
	}
}

// eliminateImplies rewrites every implication "a -> b" into "~a | b".  The
// input must already be free of IFF and XOR nodes.
func eliminateImplies(f Formula) Formula {
	switch t := f.(type) {
	case Constant, Atom:
		return f
	case Not:
		return Not{eliminateImplies(t.Operand)}
	case Binary:
		var (
			lhs = eliminateImplies(t.Lhs)
			rhs = eliminateImplies(t.Rhs)
		)
		//
		if t.Kind == IMPLIES {
			return Binary{OR, Not{lhs}, rhs}
		}
		//
		return Binary{t.Kind, lhs, rhs}
	default:
		panic("unreachable")
	}
}

// nnf pushes negations down to the literal level via De Morgan's laws and
// double-negation elimination, so that NOT appears only directly above an
// atom (or a constant).  The input must contain only AND, OR and NOT.
func nnf(f Formula) Formula {
	switch t := f.(type) {
	case Constant, Atom:
		return f
	case Not:
		return nnfNegate(t.Operand)
	case Binary:
		return Binary{t.Kind, nnf(t.Lhs), nnf(t.Rhs)}
	default:
		panic("unreachable")
	}
}

// nnfNegate computes the negation-normal form of "~f".
func nnfNegate(f Formula) Formula {
	switch t := f.(type) {
	case Constant, Atom:
		return Not{t}
	case Not:
		// Double negation
		return nnf(t.Operand)
	case Binary:
		switch t.Kind {
		case AND:
			return Binary{OR, nnfNegate(t.Lhs), nnfNegate(t.Rhs)}
		case OR:
			return Binary{AND, nnfNegate(t.Lhs), nnfNegate(t.Rhs)}
		default:
			panic("unexpected connective in negation-normal form")
		}
	default:
		panic("unreachable")
	}
}

// distributeCNF distributes disjunction over conjunction, bottom up, until
// no "a | (b & c)" pattern remains.
func distributeCNF(f Formula) Formula {
	switch t := f.(type) {
	case Binary:
		switch t.Kind {
		case AND:
			return Binary{AND, distributeCNF(t.Lhs), distributeCNF(t.Rhs)}
		case OR:
			return distributeOr(distributeCNF(t.Lhs), distributeCNF(t.Rhs))
		}
	}
	//
	return f
}

// distributeOr builds the disjunction of two CNF formulas, pushing the
// disjunction inside any top-level conjunction.
func distributeOr(lhs, rhs Formula) Formula {
	if l, ok := lhs.(Binary); ok && l.Kind == AND {
		return Binary{AND, distributeOr(l.Lhs, rhs), distributeOr(l.Rhs, rhs)}
	}
	//
	if r, ok := rhs.(Binary); ok && r.Kind == AND {
		return Binary{AND, distributeOr(lhs, r.Lhs), distributeOr(lhs, r.Rhs)}
	}
	//
	return Binary{OR, lhs, rhs}
}

// distributeDNF distributes conjunction over disjunction, bottom up, until
// no "a & (b | c)" pattern remains.
func distributeDNF(f Formula) Formula {
	switch t := f.(type) {
	case Binary:
		switch t.Kind {
		case OR:
			return Binary{OR, distributeDNF(t.Lhs), distributeDNF(t.Rhs)}
		case AND:
			return distributeAnd(distributeDNF(t.Lhs), distributeDNF(t.Rhs))
		}
	}
	//
	return f
}

// distributeAnd builds the conjunction of two DNF formulas, pushing the
// conjunction inside any top-level disjunction.
func distributeAnd(lhs, rhs Formula) Formula {
	if l, ok := lhs.(Binary); ok && l.Kind == OR {
		return Binary{OR, distributeAnd(l.Lhs, rhs), distributeAnd(l.Rhs, rhs)}
	}
	//
	if r, ok := rhs.(Binary); ok && r.Kind == OR {
		return Binary{OR, distributeAnd(lhs, r.Lhs), distributeAnd(lhs, r.Rhs)}
	}
	//
	return Binary{AND, lhs, rhs}
}
