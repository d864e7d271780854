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
	"fmt"

	"github.com/Denliness/federated/build/fmterr"
	"github.com/Denliness/federated/build/intrinsics/defs"
	"github.com/Denliness/federated/build/placement"
	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/value"
)

type mapRule struct{}

func (mapRule) def() *defs.Def { return defs.FederatedMap }

func (mapRule) params() []string { return []string{"value to be mapped", "mapping function"} }

func (r mapRule) derive(args []*value.Value) (*types.Function, []*value.Value, error) {
	def, params := r.def(), r.params()
	val, mapFn := args[0], args[1]
	if tpl, ok := val.Type().(*types.Tuple); ok {
		if tpl.Len() != 2 {
			return nil, nil, fmterr.New(fmterr.KindMismatch, def.URI(), params[0],
				"a value placed at CLIENTS or a tuple of two of them", tpl)
		}
		zipped, err := Zip(val)
		if err != nil {
			return nil, nil, err
		}
		val = zipped
	}
	fed, err := checkFederated(def, params[0], val.Type(), placement.Clients)
	if err != nil {
		return nil, nil, err
	}
	fn, err := checkFunction(def, params[1], mapFn)
	if err != nil {
		return nil, nil, err
	}
	if !types.IsAssignableFrom(fn.Param, fed.Member) {
		return nil, nil, fmterr.New(fmterr.AssignabilityMismatch, def.URI(), params[1],
			fmt.Sprintf("a function accepting %s", fed.Member), fn)
	}
	result, err := place(def, params[1], fn.Result, placement.Clients, fed.AllEqual)
	if err != nil {
		return nil, nil, err
	}
	return types.NewFunction(types.NewTuple(fed, fn), result), []*value.Value{val, mapFn}, nil
}

// Map applies a function to the member value of every client.
//
// A tuple of two client values is zipped before the function is applied.
// The result is equal at all clients if the value is.
func Map(val, fn any) (*value.Value, error) {
	return Apply(defs.FederatedMap.URI(), val, fn)
}
