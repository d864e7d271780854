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
	"github.com/Denliness/federated/build/types/kind"
	"github.com/Denliness/federated/build/value"
)

// Weight of the client values being averaged.
type Weight struct {
	val any
	set bool
}

// Weighted returns the weight of a weighted average.
// w must be a scalar integer or float federated at CLIENTS.
func Weighted(w any) Weight {
	return Weight{val: w, set: true}
}

// Unweighted returns the absence of weight.
func Unweighted() Weight {
	return Weight{}
}

// Average returns the average of client values on the server.
//
// The member type of the value must only be made of floating-point or complex numbers.
// The average is weighted if a weight is given.
func Average(val any, weight Weight) (*value.Value, error) {
	if !weight.set {
		return Apply(defs.FederatedAverage.URI(), val)
	}
	return Apply(defs.FederatedWeightedAverage.URI(), val, weight.val)
}

func averageValue(def *defs.Def, arg string, val *value.Value) (*types.Federated, error) {
	fed, err := checkFederated(def, arg, val.Type(), placement.Clients)
	if err != nil {
		return nil, err
	}
	if !types.IsAverageCompatible(fed.Member) {
		return nil, fmterr.New(fmterr.CompatibilityMismatch, def.URI(), arg, "a member type of floating-point or complex numbers", fed.Member)
	}
	return fed, nil
}

type averageRule struct{}

func (averageRule) def() *defs.Def { return defs.FederatedAverage }

func (averageRule) params() []string { return []string{"value to be averaged"} }

func (r averageRule) derive(args []*value.Value) (*types.Function, []*value.Value, error) {
	def, arg := r.def(), r.params()[0]
	fed, err := averageValue(def, arg, args[0])
	if err != nil {
		return nil, nil, err
	}
	result, err := place(def, arg, fed.Member, placement.Server, true)
	if err != nil {
		return nil, nil, err
	}
	return types.NewFunction(fed, result), args, nil
}

type weightedAverageRule struct{}

func (weightedAverageRule) def() *defs.Def { return defs.FederatedWeightedAverage }

func (weightedAverageRule) params() []string {
	return []string{"value to be averaged", "weight to use in averaging"}
}

const wantWeight = "a scalar integer or float placed at CLIENTS"

func (r weightedAverageRule) derive(args []*value.Value) (*types.Function, []*value.Value, error) {
	def, params := r.def(), r.params()
	fed, err := averageValue(def, params[0], args[0])
	if err != nil {
		return nil, nil, err
	}
	weight, err := checkFederated(def, params[1], args[1].Type(), placement.Clients)
	if err != nil {
		return nil, nil, err
	}
	tensor, ok := weight.Member.(*types.Tensor)
	if !ok || !tensor.IsScalar() {
		return nil, nil, fmterr.New(fmterr.KindMismatch, def.URI(), params[1], wantWeight, weight.Member)
	}
	if !kind.IsInteger(tensor.DType) && !kind.IsFloat(tensor.DType) {
		return nil, nil, fmterr.New(fmterr.CompatibilityMismatch, def.URI(), params[1], wantWeight, weight.Member)
	}
	result, err := place(def, params[0], fed.Member, placement.Server, true)
	if err != nil {
		return nil, nil, err
	}
	return types.NewFunction(types.NewTuple(fed, weight), result), args, nil
}
