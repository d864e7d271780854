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

package typestr_test

import (
	"strings"
	"testing"

	"github.com/Denliness/federated/build/placement"
	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/types/kind"
	"github.com/Denliness/federated/build/types/typestr"
)

func TestParse(t *testing.T) {
	i32 := types.Scalar(kind.Int32)
	tests := []struct {
		src  string
		want types.Type
	}{
		{src: "int32", want: i32},
		{src: "float32[2, ?]", want: types.NewTensor(kind.Float32, 2, types.UnknownDim)},
		{src: "<>", want: types.NewTuple()},
		{
			src: "<a=int32,float64>",
			want: types.NewNamedTuple(
				types.Element{Name: "a", Type: i32},
				types.Element{Type: types.Scalar(kind.Float64)},
			),
		},
		{src: "(int32 -> bool)", want: types.NewFunction(i32, types.Scalar(kind.Bool))},
		{src: "( -> int32)", want: types.NewFunction(nil, i32)},
		{src: "int32**", want: types.NewSequence(types.NewSequence(i32))},
		{src: "{int32}@CLIENTS", want: &types.Federated{Member: i32, Placement: placement.Clients}},
		{src: "int32@SERVER", want: &types.Federated{Member: i32, Placement: placement.Server, AllEqual: true}},
		{src: "int32*@server", want: &types.Federated{Member: types.NewSequence(i32), Placement: placement.Server, AllEqual: true}},
		{src: "int32@SERVER*", want: types.NewSequence(&types.Federated{Member: i32, Placement: placement.Server, AllEqual: true})},
		{src: "{int32}@CLIENTS**", want: types.NewSequence(types.NewSequence(&types.Federated{Member: i32, Placement: placement.Clients}))},
		{src: "{<int32*,x=(int32 -> int32)>}@clients", want: &types.Federated{
			Member: types.NewNamedTuple(
				types.Element{Type: types.NewSequence(i32)},
				types.Element{Name: "x", Type: types.NewFunction(i32, i32)},
			),
			Placement: placement.Clients,
		}},
	}
	for _, test := range tests {
		got, err := typestr.Parse(test.src)
		if err != nil {
			t.Errorf("cannot parse %q:\n%+v", test.src, err)
			continue
		}
		if !types.Equal(got, test.want) {
			t.Errorf("incorrect type for %q: got %v but want %v", test.src, got, test.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	srcs := []string{
		"int32",
		"float32[2,?]",
		"<a=int32,float32>",
		"(<float32,int32> -> float32)",
		"( -> int32)",
		"int32*",
		"int32@SERVER*",
		"{int32}@CLIENTS*",
		"<a={float32}@CLIENTS*,b=int32*@SERVER>",
		"{int32}@CLIENTS",
		"<a=float32,b=int32>@SERVER",
		"(<{int32}@CLIENTS,float32,(<float32,int32> -> float32)> -> float32@SERVER)",
	}
	for _, src := range srcs {
		typ := typestr.MustParse(src)
		if got := typ.String(); got != src {
			t.Errorf("round trip of %q returned %q", src, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "int33", want: "unknown tensor data type"},
		{src: "{int32}", want: "missing placement"},
		{src: "{int32}*@CLIENTS", want: "cannot build a sequence"},
		{src: "int32@WORKERS", want: "unknown placement"},
		{src: "{int32@SERVER}@CLIENTS", want: "already federated"},
		{src: "int32@SERVER*@CLIENTS", want: "already federated"},
		{src: "<int32", want: "cannot parse type"},
		{src: "(int32 -> )", want: "cannot parse type"},
	}
	for _, test := range tests {
		_, err := typestr.Parse(test.src)
		if err == nil {
			t.Errorf("%q: expected an error", test.src)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%q: error %q does not contain %q", test.src, err.Error(), test.want)
		}
	}
}
