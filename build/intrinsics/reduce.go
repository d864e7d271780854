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

package intrinsics

import (
	"github.com/Denliness/federated/build/intrinsics/defs"
	"github.com/Denliness/federated/build/placement"
	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/value"
)

type reduceRule struct{}

func (reduceRule) def() *defs.Def { return defs.FederatedReduce }

func (reduceRule) params() []string {
	return []string{"value to be reduced", "zero", "operator"}
}

func (r reduceRule) derive(args []*value.Value) (*types.Function, []*value.Value, error) {
	def, params := r.def(), r.params()
	val, zero, op := args[0], args[1], args[2]
	fed, err := checkFederated(def, params[0], val.Type(), placement.Clients)
	if err != nil {
		return nil, nil, err
	}
	if err := checkZero(def, params[1], zero); err != nil {
		return nil, nil, err
	}
	opFn, err := checkFunction(def, params[2], op)
	if err != nil {
		return nil, nil, err
	}
	opWant := types.ReductionOp(zero.Type(), fed.Member)
	if err := checkOperator(def, params[2], opWant, opFn); err != nil {
		return nil, nil, err
	}
	result, err := place(def, params[1], zero.Type(), placement.Server, true)
	if err != nil {
		return nil, nil, err
	}
	return types.NewFunction(types.NewTuple(fed, zero.Type(), opWant), result), args, nil
}

// Reduce reduces client values on the server with a reduction operator.
//
// The operator has the type (<U,T> -> U) where U is the type of zero and
// T the member type of the value. zero must not have federated constituents.
func Reduce(val, zero, op any) (*value.Value, error) {
	return Apply(defs.FederatedReduce.URI(), val, zero, op)
}
