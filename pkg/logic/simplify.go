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

// Simplify shrinks a formula by exhaustively applying a set of
// equivalence-preserving rewrite rules: constant folding and absorption
// ("f & false" gives false, "f & true" gives f, and the duals for "|"),
// double-negation elimination, idempotence ("f & f" gives f), complement
// laws ("f & ~f" gives false, "f | ~f" gives true), and folding of arrow
// connectives against constant operands.  De Morgan pushes are deliberately
// not applied here; they belong to normal-form conversion.  Simplify is
// idempotent, and every rule strictly decreases the node count, so rewriting
// to a fixpoint terminates.
func Simplify(f Formula) Formula {
	switch t := f.(type) {
	case Constant, Atom:
		return f
	case Not:
		return rewrite(Not{Simplify(t.Operand)})
	case Binary:
		return rewrite(Binary{t.Kind, Simplify(t.Lhs), Simplify(t.Rhs)})
	default:
		panic("unreachable")
	}
}

// rewrite applies the rule set at the root of a formula whose children are
// already simplified, looping until no further rule fires.  Each step either
// returns a strictly smaller formula or reports the fixpoint.
func rewrite(f Formula) Formula {
	for {
		g, changed := rewriteStep(f)
		//
		if !changed {
			return f
		}
		//
		f = g
	}
}

func rewriteStep(f Formula) (Formula, bool) {
	switch t := f.(type) {
	case Not:
		switch op := t.Operand.(type) {
		case Constant:
			return Constant{!op.Value}, true
		case Not:
			return op.Operand, true
		}
	case Binary:
		switch t.Kind {
		case AND:
			return rewriteAnd(t)
		case OR:
			return rewriteOr(t)
		default:
			return rewriteArrow(t)
		}
	}
	//
	return f, false
}

func rewriteAnd(f Binary) (Formula, bool) {
	// Constant absorption
	if c, ok := f.Lhs.(Constant); ok {
		if c.Value {
			return f.Rhs, true
		}
		//
		return False, true
	}
	//
	if c, ok := f.Rhs.(Constant); ok {
		if c.Value {
			return f.Lhs, true
		}
		//
		return False, true
	}
	// Idempotence
	if Equal(f.Lhs, f.Rhs) {
		return f.Lhs, true
	}
	// Complement laws
	if complementary(f.Lhs, f.Rhs) {
		return False, true
	}
	//
	return f, false
}

func rewriteOr(f Binary) (Formula, bool) {
	// Constant absorption
	if c, ok := f.Lhs.(Constant); ok {
		if c.Value {
			return True, true
		}
		//
		return f.Rhs, true
	}
	//
	if c, ok := f.Rhs.(Constant); ok {
		if c.Value {
			return True, true
		}
		//
		return f.Lhs, true
	}
	// Idempotence
	if Equal(f.Lhs, f.Rhs) {
		return f.Lhs, true
	}
	// Complement laws
	if complementary(f.Lhs, f.Rhs) {
		return True, true
	}
	//
	return f, false
}

// rewriteArrow folds an implication, equivalence or exclusive disjunction
// whose operand is a constant.  Connectives between non-constant operands are
// left untouched; eliminating them is the job of normal-form conversion.
func rewriteArrow(f Binary) (Formula, bool) {
	if c, ok := f.Lhs.(Constant); ok {
		switch f.Kind {
		case IMPLIES:
			if c.Value {
				return f.Rhs, true
			}
			//
			return True, true
		case IFF:
			return foldEquiv(c.Value, f.Rhs), true
		case XOR:
			return foldEquiv(!c.Value, f.Rhs), true
		}
	}
	//
	if c, ok := f.Rhs.(Constant); ok {
		switch f.Kind {
		case IMPLIES:
			if c.Value {
				return True, true
			}
			//
			return Not{f.Lhs}, true
		case IFF:
			return foldEquiv(c.Value, f.Lhs), true
		case XOR:
			return foldEquiv(!c.Value, f.Lhs), true
		}
	}
	//
	return f, false
}

func foldEquiv(val bool, other Formula) Formula {
	if val {
		return other
	}
	//
	return Not{other}
}

// complementary checks whether one operand is the direct negation of the
// other.
func complementary(lhs, rhs Formula) bool {
	if n, ok := rhs.(Not); ok && Equal(lhs, n.Operand) {
		return true
	}
	//
	if n, ok := lhs.(Not); ok && Equal(n.Operand, rhs) {
		return true
	}
	//
	return false
}
