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

package defs_test

import (
	"regexp"
	"testing"

	"github.com/Denliness/federated/build/intrinsics/defs"
	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/types/typestr"
	"github.com/google/go-cmp/cmp"
)

func TestCatalog(t *testing.T) {
	var got []string
	for _, def := range defs.All() {
		got = append(got, def.URI())
	}
	want := []string{
		"federated_aggregate",
		"federated_average",
		"federated_broadcast",
		"federated_collect",
		"federated_map",
		"federated_reduce",
		"federated_sum",
		"federated_weighted_average",
		"federated_zip",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect catalog (-want +got):\n%s", diff)
	}
	for _, uri := range want {
		def, ok := defs.Lookup(uri)
		if !ok {
			t.Errorf("%s not found", uri)
			continue
		}
		if def.String() != uri {
			t.Errorf("incorrect definition for %s: %s", uri, def)
		}
	}
	if _, ok := defs.Lookup("federated_scan"); ok {
		t.Errorf("unknown intrinsic found in the catalog")
	}
}

var typeVar = regexp.MustCompile(`\b[TUR]\b`)

var instances = map[string]string{
	"T": "int32",
	"U": "float32",
	"R": "bool",
}

// TestTemplates instantiates every template with concrete types
// and checks that it is a function type.
func TestTemplates(t *testing.T) {
	for _, def := range defs.All() {
		src := typeVar.ReplaceAllStringFunc(def.Template(), func(v string) string {
			return instances[v]
		})
		typ, err := typestr.Parse(src)
		if err != nil {
			t.Errorf("%s: invalid template %q:\n%+v", def.Name(), def.Template(), err)
			continue
		}
		if _, ok := typ.(*types.Function); !ok {
			t.Errorf("%s: template %q is not a function type", def.Name(), def.Template())
		}
	}
}
