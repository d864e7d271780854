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
	"github.com/Denliness/federated/build/fmterr"
	"github.com/Denliness/federated/build/intrinsics/defs"
	"github.com/Denliness/federated/build/placement"
	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/value"
)

type sumRule struct{}

func (sumRule) def() *defs.Def { return defs.FederatedSum }

func (sumRule) params() []string { return []string{"value to be summed"} }

func (r sumRule) derive(args []*value.Value) (*types.Function, []*value.Value, error) {
	def, arg := r.def(), r.params()[0]
	fed, err := checkFederated(def, arg, args[0].Type(), placement.Clients)
	if err != nil {
		return nil, nil, err
	}
	if !types.IsSumCompatible(fed.Member) {
		return nil, nil, fmterr.New(fmterr.CompatibilityMismatch, def.URI(), arg, "a member type of numbers", fed.Member)
	}
	result, err := place(def, arg, fed.Member, placement.Server, true)
	if err != nil {
		return nil, nil, err
	}
	return types.NewFunction(fed, result), args, nil
}

// Sum returns the sum of client values on the server.
//
// The member type of the value must only be made of numbers.
func Sum(val any) (*value.Value, error) {
	return Apply(defs.FederatedSum.URI(), val)
}
