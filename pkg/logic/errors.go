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

import "fmt"

// InvalidAtomNameError signals an attempt to construct an atom whose name is
// not a well-formed identifier.
type InvalidAtomNameError struct {
	// Name is the rejected atom name.
	Name string
}

// Error implements the error interface.
func (p *InvalidAtomNameError) Error() string {
	return fmt.Sprintf("invalid atom name %q", p.Name)
}

// UnboundAtomError signals that a primitive boolean was requested from a
// formula which still contains one or more unbound atoms.  This arises only
// on the caller-side unwrap (Value); evaluation itself never fails, it simply
// returns a residual formula.
type UnboundAtomError struct {
	// Atom is the name of the first unbound atom, in pre-order.
	Atom string
}

// Error implements the error interface.
func (p *UnboundAtomError) Error() string {
	return fmt.Sprintf("atom %q is unbound", p.Atom)
}
