// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package value

import (
	"fmt"

	"github.com/Denliness/federated/build/fmterr"
	"github.com/Denliness/federated/build/types"
)

// Call applies the value to arguments and returns a value of the result type.
//
// More than one argument are packed into a tuple. The argument type must be
// assignable to the parameter type of the function.
func (v *Value) Call(args ...*Value) (*Value, error) {
	name := v.String()
	fn, ok := v.typ.(*types.Function)
	if !ok {
		return nil, fmterr.New(fmterr.KindMismatch, name, "callee", "a function", v.typ)
	}
	var arg *Value
	switch len(args) {
	case 0:
	case 1:
		arg = args[0]
	default:
		arg = Tuple(args...)
	}
	if fn.Param == nil {
		if arg != nil {
			return nil, fmterr.New(fmterr.ArityMismatch, name, "arguments", "no argument", fmt.Sprintf("%d argument(s)", len(args)))
		}
		return New(fn.Result, &Call{Fn: v}), nil
	}
	if arg == nil {
		return nil, fmterr.New(fmterr.ArityMismatch, name, "arguments", fmt.Sprintf("an argument of type %s", fn.Param), "no argument")
	}
	if !types.IsAssignableFrom(fn.Param, arg.Type()) {
		return nil, fmterr.New(fmterr.AssignabilityMismatch, name, "argument", fn.Param.String(), arg.Type())
	}
	return New(fn.Result, &Call{Fn: v, Arg: arg, Packed: len(args) > 1}), nil
}
