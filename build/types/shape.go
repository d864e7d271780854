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

package types

import (
	"slices"

	"github.com/Denliness/federated/build/types/kind"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
)

// TensorFromShape returns the tensor type of a backend array shape.
func TensorFromShape(sh *shape.Shape) *Tensor {
	return &Tensor{
		DType: kind.FromDType(sh.DType),
		Dims:  slices.Clone(sh.AxisLengths),
	}
}

// Shape returns the backend shape of the tensor.
// The boolean is false if the element kind is not supported by the backend
// or if one of the axis lengths is unknown.
func (t *Tensor) Shape() (*shape.Shape, bool) {
	dt := t.DType.DType()
	if dt == dtype.Invalid {
		return nil, false
	}
	if slices.Contains(t.Dims, UnknownDim) {
		return nil, false
	}
	return &shape.Shape{
		DType:       dt,
		AxisLengths: slices.Clone(t.Dims),
	}, true
}
