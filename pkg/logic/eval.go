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

// Interpretation maps atom names to truth values.  An interpretation may be
// partial; atoms absent from the mapping simply remain unbound during
// evaluation rather than being an error.
type Interpretation map[string]bool

// Eval reduces a formula under a given interpretation.  The result is always
// a formula: when every atom is bound the result is a Constant, which callers
// may unwrap via Value; otherwise the result is a residual formula over the
// unbound atoms.  Binary operands are short-circuited whenever one operand
// reduces to a constant which alone determines the result.
func Eval(f Formula, interpretation Interpretation) Formula {
	switch t := f.(type) {
	case Constant:
		return t
	case Atom:
		if val, ok := interpretation[t.Name]; ok {
			return Constant{val}
		}
		// Unbound atoms evaluate to themselves.
		return t
	case Not:
		operand := Eval(t.Operand, interpretation)
		//
		if c, ok := operand.(Constant); ok {
			return Constant{!c.Value}
		}
		//
		return Not{operand}
	case Binary:
		return evalBinary(t, interpretation)
	default:
		panic("unreachable")
	}
}

// Value unwraps the boolean held by a constant formula.  When the formula is
// not a constant (i.e. it still mentions unbound atoms), an UnboundAtomError
// naming the first unbound atom is returned instead.
func Value(f Formula) (bool, error) {
	if c, ok := f.(Constant); ok {
		return c.Value, nil
	}
	//
	return false, &UnboundAtomError{Atoms(f)[0]}
}

func evalBinary(f Binary, interpretation Interpretation) Formula {
	lhs := Eval(f.Lhs, interpretation)
	// Attempt to short-circuit on the left operand before touching the right.
	if c, ok := lhs.(Constant); ok {
		switch f.Kind {
		case AND:
			if !c.Value {
				return False
			}
			//
			return Eval(f.Rhs, interpretation)
		case OR:
			if c.Value {
				return True
			}
			//
			return Eval(f.Rhs, interpretation)
		case IMPLIES:
			if !c.Value {
				return True
			}
			//
			return Eval(f.Rhs, interpretation)
		case IFF:
			return evalEquiv(c.Value, Eval(f.Rhs, interpretation))
		case XOR:
			return evalEquiv(!c.Value, Eval(f.Rhs, interpretation))
		}
	}
	//
	rhs := Eval(f.Rhs, interpretation)
	//
	if c, ok := rhs.(Constant); ok {
		switch f.Kind {
		case AND:
			if !c.Value {
				return False
			}
			//
			return lhs
		case OR:
			if c.Value {
				return True
			}
			//
			return lhs
		case IMPLIES:
			if c.Value {
				return True
			}
			// lhs IMPLIES false reduces to the negation of lhs.
			return Not{lhs}
		case IFF:
			return evalEquiv(c.Value, lhs)
		case XOR:
			return evalEquiv(!c.Value, lhs)
		}
	}
	// Neither operand determined the result; rebuild the residual.
	return Binary{f.Kind, lhs, rhs}
}

// evalEquiv reduces an equivalence one of whose operands is already known to
// hold the constant value val.
func evalEquiv(val bool, other Formula) Formula {
	if c, ok := other.(Constant); ok {
		return Constant{val == c.Value}
	} else if val {
		return other
	}
	//
	return Not{other}
}
