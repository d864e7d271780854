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

// Package defs is the catalog of federated intrinsics.
//
// Each definition pairs the identifier of an intrinsic with the template of
// its type, written in the notation of the typestr package where T, U, and R
// stand for any type. The actual type of an instance is derived when the
// intrinsic is built from its arguments.
package defs

// Def defines an intrinsic in the catalog.
type Def struct {
	name     string
	uri      string
	template string
}

// Name of the intrinsic.
func (d *Def) Name() string { return d.name }

// URI identifying the intrinsic.
func (d *Def) URI() string { return d.uri }

// Template of the intrinsic type.
func (d *Def) Template() string { return d.template }

// String returns the uri of the intrinsic.
func (d *Def) String() string { return d.uri }

var (
	catalog []*Def
	byURI   = map[string]*Def{}
)

func define(name, uri, template string) *Def {
	def := &Def{name: name, uri: uri, template: template}
	if _, dup := byURI[uri]; dup {
		panic("intrinsic " + uri + " defined twice")
	}
	catalog = append(catalog, def)
	byURI[uri] = def
	return def
}

// Intrinsics of the catalog.
var (
	// FederatedAggregate aggregates client values on the server in multiple
	// stages: accumulate within groups of clients, merge the groups, and report.
	FederatedAggregate = define(
		"FEDERATED_AGGREGATE",
		"federated_aggregate",
		"(<{T}@CLIENTS,U,(<U,T> -> U),(<U,U> -> U),(U -> R)> -> R@SERVER)")

	// FederatedAverage averages client values on the server.
	FederatedAverage = define(
		"FEDERATED_AVERAGE",
		"federated_average",
		"({T}@CLIENTS -> T@SERVER)")

	// FederatedBroadcast sends a server value to all the clients.
	FederatedBroadcast = define(
		"FEDERATED_BROADCAST",
		"federated_broadcast",
		"(T@SERVER -> T@CLIENTS)")

	// FederatedCollect materializes all client values as a server sequence.
	FederatedCollect = define(
		"FEDERATED_COLLECT",
		"federated_collect",
		"({T}@CLIENTS -> T*@SERVER)")

	// FederatedMap applies a function to the member value of each client.
	FederatedMap = define(
		"FEDERATED_MAP",
		"federated_map",
		"(<{T}@CLIENTS,(T -> U)> -> {U}@CLIENTS)")

	// FederatedReduce reduces client values on the server with a reduction operator.
	FederatedReduce = define(
		"FEDERATED_REDUCE",
		"federated_reduce",
		"(<{T}@CLIENTS,U,(<U,T> -> U)> -> U@SERVER)")

	// FederatedSum sums client values on the server.
	FederatedSum = define(
		"FEDERATED_SUM",
		"federated_sum",
		"({T}@CLIENTS -> T@SERVER)")

	// FederatedWeightedAverage averages client values on the server given client weights.
	FederatedWeightedAverage = define(
		"FEDERATED_WEIGHTED_AVERAGE",
		"federated_weighted_average",
		"(<{T}@CLIENTS,{U}@CLIENTS> -> T@SERVER)")

	// FederatedZip converts a pair of client values into client pairs.
	FederatedZip = define(
		"FEDERATED_ZIP",
		"federated_zip",
		"(<{T}@CLIENTS,{U}@CLIENTS> -> {<T,U>}@CLIENTS)")
)

// Lookup returns the definition of an intrinsic given its uri.
func Lookup(uri string) (*Def, bool) {
	def, ok := byURI[uri]
	return def, ok
}

// All returns all the intrinsics of the catalog in their definition order.
func All() []*Def {
	return append([]*Def{}, catalog...)
}
