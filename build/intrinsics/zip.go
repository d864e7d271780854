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

type zipRule struct{}

func (zipRule) def() *defs.Def { return defs.FederatedZip }

func (zipRule) params() []string { return []string{"value to be zipped"} }

func (r zipRule) derive(args []*value.Value) (*types.Function, []*value.Value, error) {
	def, arg := r.def(), r.params()[0]
	val := args[0]
	tpl, ok := val.Type().(*types.Tuple)
	if !ok {
		return nil, nil, fmterr.New(fmterr.KindMismatch, def.URI(), arg, "a tuple of two values placed at CLIENTS", val.Type())
	}
	if tpl.Len() != 2 {
		return nil, nil, fmterr.New(fmterr.ArityMismatch, def.URI(), arg, "a tuple of two elements",
			fmt.Sprintf("%d element(s): %s", tpl.Len(), tpl))
	}
	members := make([]types.Type, tpl.Len())
	allEqual := true
	for i, elt := range tpl.Elements {
		fed, err := checkFederated(def, fmt.Sprintf("element %d of the %s", i, arg), elt.Type, placement.Clients)
		if err != nil {
			return nil, nil, err
		}
		members[i] = fed.Member
		allEqual = allEqual && fed.AllEqual
	}
	result, err := place(def, arg, types.NewTuple(members...), placement.Clients, allEqual)
	if err != nil {
		return nil, nil, err
	}
	return types.NewFunction(tpl, result), args, nil
}

// Zip converts a pair of client values into a client value of pairs.
//
// The member type of the result is an unnamed pair: element names are dropped.
func Zip(val any) (*value.Value, error) {
	return Apply(defs.FederatedZip.URI(), val)
}
