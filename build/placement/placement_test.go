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

package placement_test

import (
	"testing"

	"github.com/Denliness/federated/build/placement"
)

type placed struct{ p *placement.Literal }

func (p placed) PlacementLiteral() *placement.Literal { return p.p }

func TestLookup(t *testing.T) {
	tests := []struct {
		s    string
		want *placement.Literal
	}{
		{s: "CLIENTS", want: placement.Clients},
		{s: "clients", want: placement.Clients},
		{s: "SERVER", want: placement.Server},
		{s: "server", want: placement.Server},
		{s: "workers"},
	}
	for _, test := range tests {
		got, ok := placement.Lookup(test.s)
		if ok != (test.want != nil) || got != test.want {
			t.Errorf("Lookup(%q) = %v, %t but want %v", test.s, got, ok, test.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	if placement.Clients.DefaultAllEqual() {
		t.Errorf("%s: all_equal by default", placement.Clients)
	}
	if !placement.Server.DefaultAllEqual() {
		t.Errorf("%s: not all_equal by default", placement.Server)
	}
	if len(placement.All()) != 2 {
		t.Errorf("got %d placements but want 2", len(placement.All()))
	}
}

func TestIs(t *testing.T) {
	if !placement.Is(placed{placement.Clients}, placement.Clients) {
		t.Errorf("placed at CLIENTS not recognised")
	}
	if placement.Is(placed{placement.Clients}, placement.Server) {
		t.Errorf("placed at CLIENTS recognised as SERVER")
	}
	if placement.Is(42, placement.Server) {
		t.Errorf("unplaced value recognised as placed")
	}
	if _, ok := placement.Of("x"); ok {
		t.Errorf("unplaced value has a placement")
	}
}
