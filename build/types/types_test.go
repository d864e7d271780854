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

package types_test

import (
	"testing"

	"github.com/Denliness/federated/build/placement"
	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/types/kind"
	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
)

var (
	i32 = types.Scalar(kind.Int32)
	f32 = types.Scalar(kind.Float32)
	c64 = types.Scalar(kind.Complex64)
	str = types.Scalar(kind.String)
)

func fed(t *testing.T, member types.Type, p *placement.Literal, allEqual bool) *types.Federated {
	t.Helper()
	typ, err := types.FederatedAt(member, p, allEqual)
	if err != nil {
		t.Fatalf("cannot build federated type: %+v", err)
	}
	return typ
}

func TestString(t *testing.T) {
	tests := []struct {
		typ  types.Type
		want string
	}{
		{typ: i32, want: "int32"},
		{typ: types.NewTensor(kind.Float32, 2, types.UnknownDim), want: "float32[2,?]"},
		{typ: types.NewTuple(), want: "<>"},
		{
			typ: types.NewNamedTuple(
				types.Element{Name: "a", Type: i32},
				types.Element{Type: f32},
			),
			want: "<a=int32,float32>",
		},
		{typ: types.NewFunction(i32, f32), want: "(int32 -> float32)"},
		{typ: types.NewFunction(nil, f32), want: "( -> float32)"},
		{typ: types.NewSequence(i32), want: "int32*"},
		{typ: fed(t, i32, placement.Clients, false), want: "{int32}@CLIENTS"},
		{typ: fed(t, i32, placement.Server, true), want: "int32@SERVER"},
		{typ: types.ReductionOp(f32, i32), want: "(<float32,int32> -> float32)"},
	}
	for _, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("incorrect string: got %q but want %q", got, test.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		x, y types.Type
		want bool
	}{
		{x: i32, y: types.Scalar(kind.Int32), want: true},
		{x: i32, y: f32},
		{x: types.NewTensor(kind.Int32, 2), y: types.NewTensor(kind.Int32, 3)},
		{x: types.NewTuple(i32, f32), y: types.NewTuple(i32, f32), want: true},
		{x: types.NewTuple(i32, f32), y: types.NewNamedTuple(types.Element{Name: "a", Type: i32}, types.Element{Type: f32})},
		{x: types.NewFunction(i32, f32), y: types.NewFunction(i32, f32), want: true},
		{x: types.NewFunction(nil, f32), y: types.NewFunction(i32, f32)},
		{x: types.NewSequence(i32), y: types.NewSequence(i32), want: true},
		{x: fed(t, i32, placement.Clients, false), y: fed(t, i32, placement.Clients, false), want: true},
		{x: fed(t, i32, placement.Clients, false), y: fed(t, i32, placement.Clients, true)},
		{x: fed(t, i32, placement.Clients, true), y: fed(t, i32, placement.Server, true)},
		{x: nil, y: nil, want: true},
		{x: i32, y: nil},
	}
	for _, test := range tests {
		if got := types.Equal(test.x, test.y); got != test.want {
			t.Errorf("Equal(%v, %v) = %t but want %t", test.x, test.y, got, test.want)
		}
	}
}

func TestFederatedConstruction(t *testing.T) {
	clients, err := types.NewFederated(i32, placement.Clients)
	if err != nil {
		t.Fatal(err)
	}
	if clients.AllEqual {
		t.Errorf("%s: all_equal by default", clients)
	}
	server, err := types.NewFederated(i32, placement.Server)
	if err != nil {
		t.Fatal(err)
	}
	if !server.AllEqual {
		t.Errorf("%s: not all_equal by default", server)
	}
	if got := types.Member(server); got != i32 {
		t.Errorf("incorrect member: got %v but want %v", got, i32)
	}
	if got := types.Member(i32); got != nil {
		t.Errorf("non-federated type has member %v", got)
	}
	if _, err := types.NewFederated(types.NewTuple(i32, server), placement.Clients); err == nil {
		t.Errorf("nested federated type: expected an error")
	}
	if _, err := types.FederatedAt(nil, placement.Clients, false); err == nil {
		t.Errorf("federated type without member: expected an error")
	}
}

func TestTupleAccess(t *testing.T) {
	tpl := types.NewNamedTuple(
		types.Element{Name: "x", Type: i32},
		types.Element{Type: f32},
	)
	if tpl.Len() != 2 {
		t.Errorf("got %d elements but want 2", tpl.Len())
	}
	if got, ok := tpl.Field("x"); !ok || got != i32 {
		t.Errorf("Field(x) = %v, %t but want %v", got, ok, i32)
	}
	if _, ok := tpl.Field(""); ok {
		t.Errorf("unnamed element found by name")
	}
	if diff := cmp.Diff([]string{"int32", "float32"}, typeStrings(tpl.Types())); diff != "" {
		t.Errorf("incorrect element types (-want +got):\n%s", diff)
	}
}

func typeStrings(typs []types.Type) []string {
	ss := make([]string, len(typs))
	for i, typ := range typs {
		ss[i] = typ.String()
	}
	return ss
}

func TestShape(t *testing.T) {
	sh := &shape.Shape{DType: dtype.Float32, AxisLengths: []int{2, 3}}
	tensor := types.TensorFromShape(sh)
	if got, want := tensor.String(), "float32[2,3]"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
	back, ok := tensor.Shape()
	if !ok {
		t.Fatalf("%s: no backend shape", tensor)
	}
	if back.DType != sh.DType || !cmp.Equal(back.AxisLengths, sh.AxisLengths) {
		t.Errorf("got shape %v but want %v", back, sh)
	}
	if _, ok := types.NewTensor(kind.Float32, types.UnknownDim).Shape(); ok {
		t.Errorf("tensor with an unknown axis has a backend shape")
	}
	if _, ok := c64.Shape(); ok {
		t.Errorf("complex tensor has a backend shape")
	}
}

func TestConstructorsCopy(t *testing.T) {
	dims := []int{2, 3}
	tensor := types.NewTensor(kind.Float32, dims...)
	dims[0] = 5
	if got, want := tensor.String(), "float32[2,3]"; got != want {
		t.Errorf("tensor changed with its dims: got %s but want %s", got, want)
	}
	elts := []types.Element{{Name: "a", Type: tensor}}
	tpl := types.NewNamedTuple(elts...)
	elts[0].Name = "b"
	if got, want := tpl.String(), "<a=float32[2,3]>"; got != want {
		t.Errorf("tuple changed with its elements: got %s but want %s", got, want)
	}
}
