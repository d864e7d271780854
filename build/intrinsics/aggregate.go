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

type aggregateRule struct{}

func (aggregateRule) def() *defs.Def { return defs.FederatedAggregate }

func (aggregateRule) params() []string {
	return []string{"value to be aggregated", "zero", "accumulate", "merge", "report"}
}

func (r aggregateRule) derive(args []*value.Value) (*types.Function, []*value.Value, error) {
	def, params := r.def(), r.params()
	val, zero := args[0], args[1]
	fed, err := checkFederated(def, params[0], val.Type(), placement.Clients)
	if err != nil {
		return nil, nil, err
	}
	if err := checkZero(def, params[1], zero); err != nil {
		return nil, nil, err
	}
	ops := make([]*types.Function, 3)
	for i, op := range args[2:] {
		if ops[i], err = checkFunction(def, params[2+i], op); err != nil {
			return nil, nil, err
		}
	}
	accumulate, merge, report := ops[0], ops[1], ops[2]
	u := zero.Type()
	accumulateWant := types.ReductionOp(u, fed.Member)
	mergeWant := types.ReductionOp(u, u)
	reportWant := types.NewFunction(u, report.Result)
	for i, check := range []struct {
		want, got *types.Function
	}{
		{want: accumulateWant, got: accumulate},
		{want: mergeWant, got: merge},
		{want: reportWant, got: report},
	} {
		if err := checkOperator(def, params[2+i], check.want, check.got); err != nil {
			return nil, nil, err
		}
	}
	result, err := place(def, params[4], report.Result, placement.Server, true)
	if err != nil {
		return nil, nil, err
	}
	param := types.NewTuple(fed, u, accumulateWant, mergeWant, reportWant)
	return types.NewFunction(param, result), args, nil
}

// Aggregate aggregates client values on the server.
//
// Client values are accumulated in groups starting from zero, the groups are
// merged, and the merged value is reported as the result on the server.
// A reduction is an aggregation where merge and report are left unspecified.
func Aggregate(val, zero, accumulate, merge, report any) (*value.Value, error) {
	return Apply(defs.FederatedAggregate.URI(), val, zero, accumulate, merge, report)
}
