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

type collectRule struct{}

func (collectRule) def() *defs.Def { return defs.FederatedCollect }

func (collectRule) params() []string { return []string{"value to be collected"} }

func (r collectRule) derive(args []*value.Value) (*types.Function, []*value.Value, error) {
	def, arg := r.def(), r.params()[0]
	fed, err := checkFederated(def, arg, args[0].Type(), placement.Clients)
	if err != nil {
		return nil, nil, err
	}
	result, err := place(def, arg, types.NewSequence(fed.Member), placement.Server, true)
	if err != nil {
		return nil, nil, err
	}
	return types.NewFunction(fed, result), args, nil
}

// Collect returns a server sequence of all the client values.
func Collect(val any) (*value.Value, error) {
	return Apply(defs.FederatedCollect.URI(), val)
}
