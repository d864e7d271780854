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

// Package intrinsics builds type-checked invocations of federated intrinsics.
//
// Every constructor converts its arguments into values, checks the typing
// rules of the intrinsic, derives the function type of the intrinsic instance,
// and returns the value of the instance applied to the arguments.
// Errors are *fmterr.Error classified by an fmterr.Kind.
//
// Constructors do not keep any state and can be called concurrently.
package intrinsics

import (
	"fmt"
	"strings"

	"github.com/Denliness/federated/build/fmterr"
	"github.com/Denliness/federated/build/intrinsics/defs"
	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/value"
	"github.com/pkg/errors"
)

// rule checks the arguments of an intrinsic and derives its type.
type rule interface {
	// def returns the catalog entry of the intrinsic.
	def() *defs.Def

	// params describes the arguments of the intrinsic, in order.
	params() []string

	// derive checks the arguments and returns the function type of the
	// intrinsic instance together with the arguments it is applied to.
	derive(args []*value.Value) (*types.Function, []*value.Value, error)
}

var rules = map[string]rule{}

func register(r rule) {
	rules[r.def().URI()] = r
}

func init() {
	register(aggregateRule{})
	register(averageRule{})
	register(weightedAverageRule{})
	register(broadcastRule{})
	register(collectRule{})
	register(mapRule{})
	register(reduceRule{})
	register(sumRule{})
	register(zipRule{})
}

// Apply builds the intrinsic identified by a catalog uri applied to arguments.
func Apply(uri string, args ...any) (*value.Value, error) {
	r, ok := rules[uri]
	if !ok {
		return nil, errors.Errorf("unknown intrinsic %q", uri)
	}
	return build(r, args)
}

func build(r rule, raw []any) (*value.Value, error) {
	uri := r.def().URI()
	params := r.params()
	if len(raw) != len(params) {
		return nil, fmterr.New(fmterr.ArityMismatch, uri, "arguments",
			fmt.Sprintf("%d argument(s) (%s)", len(params), strings.Join(params, ", ")),
			fmt.Sprintf("%d argument(s)", len(raw)))
	}
	args := make([]*value.Value, len(raw))
	for i, x := range raw {
		val, err := value.To(x)
		if err != nil {
			return nil, fmterr.New(fmterr.KindMismatch, uri, params[i], "a value", fmt.Sprintf("%T", x)).Wrap(err)
		}
		args[i] = val
	}
	fnType, callArgs, err := r.derive(args)
	if err != nil {
		return nil, err
	}
	res, err := value.NewIntrinsic(uri, fnType).Call(callArgs...)
	if err != nil {
		return nil, fmterr.Internalf(uri, "cannot apply %s to its arguments: %v", fnType, err)
	}
	return res, nil
}
