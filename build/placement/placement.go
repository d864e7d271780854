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

// Package placement defines the well-known groups of participants
// holding federated values.
package placement

// Literal identifies a group of participants.
// Literals are compared by identity.
type Literal struct {
	name            string
	uri             string
	defaultAllEqual bool
	description     string
}

var (
	// Clients is the group of client devices: unordered and of variable size.
	Clients = &Literal{
		name:        "CLIENTS",
		uri:         "clients",
		description: "The collective of all client devices.",
	}

	// Server is the single coordinating participant.
	Server = &Literal{
		name:            "SERVER",
		uri:             "server",
		defaultAllEqual: true,
		description:     "The single top-level central coordinator.",
	}

	literals = []*Literal{Clients, Server}
)

// Name of the literal, as used in type signatures.
func (p *Literal) Name() string { return p.name }

// URI of the literal.
func (p *Literal) URI() string { return p.uri }

// DefaultAllEqual returns the all_equal flag of a federated type
// at this placement when none is specified.
func (p *Literal) DefaultAllEqual() bool { return p.defaultAllEqual }

// Description of the group of participants.
func (p *Literal) Description() string { return p.description }

// String returns the name of the literal.
func (p *Literal) String() string {
	if p == nil {
		return "<nil placement>"
	}
	return p.name
}

// Lookup returns a placement literal given its name or its uri.
func Lookup(s string) (*Literal, bool) {
	for _, lit := range literals {
		if lit.name == s || lit.uri == s {
			return lit, true
		}
	}
	return nil, false
}

// All returns the well-known placement literals.
func All() []*Literal {
	return append([]*Literal{}, literals...)
}

// Placed is implemented by types attached to a placement.
type Placed interface {
	PlacementLiteral() *Literal
}

// Of returns the placement of a value type.
// The boolean is false if the type is not placed.
func Of(typ any) (*Literal, bool) {
	placed, ok := typ.(Placed)
	if !ok {
		return nil, false
	}
	return placed.PlacementLiteral(), true
}

// Is returns true if a type is placed at the given placement.
func Is(typ any, want *Literal) bool {
	got, ok := Of(typ)
	return ok && got == want
}
