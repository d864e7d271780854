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
	"strconv"
	"strings"
)

func (t *Tensor) String() string {
	if t.IsScalar() {
		return t.DType.String()
	}
	var b strings.Builder
	b.WriteString(t.DType.String())
	b.WriteString("[")
	for i, dim := range t.Dims {
		if i > 0 {
			b.WriteString(",")
		}
		if dim < 0 {
			b.WriteString("?")
			continue
		}
		b.WriteString(strconv.Itoa(dim))
	}
	b.WriteString("]")
	return b.String()
}

func (t *Tuple) String() string {
	var b strings.Builder
	b.WriteString("<")
	for i, elt := range t.Elements {
		if i > 0 {
			b.WriteString(",")
		}
		if elt.Name != "" {
			b.WriteString(elt.Name)
			b.WriteString("=")
		}
		b.WriteString(typeString(elt.Type))
	}
	b.WriteString(">")
	return b.String()
}

func (t *Function) String() string {
	if t.Param == nil {
		return "( -> " + typeString(t.Result) + ")"
	}
	return "(" + typeString(t.Param) + " -> " + typeString(t.Result) + ")"
}

func (t *Sequence) String() string {
	return typeString(t.Element) + "*"
}

// String of a federated type: all-equal types are written T@P, the others {T}@P.
func (t *Federated) String() string {
	if t.AllEqual {
		return typeString(t.Member) + "@" + t.Placement.String()
	}
	return "{" + typeString(t.Member) + "}@" + t.Placement.String()
}

func typeString(typ Type) string {
	if typ == nil {
		return "?"
	}
	return typ.String()
}
