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

// Package typestr parses the compact notation of federated types.
//
// The notation is the one returned by the String method of types:
//
//	int32              scalar tensor
//	float32[2,?]       tensor with an axis of unknown length
//	<a=int32,float32>  tuple with a named and an unnamed element
//	(int32 -> int32)   function
//	( -> int32)        function with no parameter
//	int32*             sequence
//	{int32}@CLIENTS    federated type, not all equal
//	int32@SERVER       federated type, all equal
//	int32@SERVER*      sequence of federated values
package typestr

import (
	"github.com/Denliness/federated/build/placement"
	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/types/kind"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type (
	typeAST struct {
		Pos      lexer.Position
		Primary  *primaryAST  `parser:"@@"`
		Suffixes []*suffixAST `parser:"@@*"`
	}

	// suffixAST is either a sequence star or a placement, applied in order.
	suffixAST struct {
		Star      bool    `parser:"  @'*'"`
		Placement *string `parser:"| '@' @Ident"`
	}

	primaryAST struct {
		Braced   *typeAST     `parser:"  '{' @@ '}'"`
		Tuple    *tupleAST    `parser:"| @@"`
		Function *functionAST `parser:"| @@"`
		Tensor   *tensorAST   `parser:"| @@"`
	}

	tupleAST struct {
		Elements []*elementAST `parser:"'<' ( @@ ( ',' @@ )* )? '>'"`
	}

	elementAST struct {
		Name *string  `parser:"( @Ident '=' )?"`
		Type *typeAST `parser:"@@"`
	}

	functionAST struct {
		Param  *typeAST `parser:"'(' @@?"`
		Result *typeAST `parser:"'->' @@ ')'"`
	}

	tensorAST struct {
		DType string    `parser:"@Ident"`
		Dims  []*dimAST `parser:"( '[' ( @@ ( ',' @@ )* )? ']' )?"`
	}

	dimAST struct {
		Length  *int `parser:"  @Int"`
		Unknown bool `parser:"| @'?'"`
	}
)

var (
	notation = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "whitespace", Pattern: `\s+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Punct", Pattern: `->|[<>(){}\[\],=*@?]`},
	})

	parser = participle.MustBuild[typeAST](
		participle.Lexer(notation),
		participle.Elide("whitespace"),
		participle.UseLookahead(2),
	)
)

// Parse a type from its compact notation.
func Parse(s string) (types.Type, error) {
	ast, err := parser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse type %q", s)
	}
	typ, err := ast.toType()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid type %q", s)
	}
	return typ, nil
}

// MustParse parses a type and panics if an error occurs.
func MustParse(s string) types.Type {
	typ, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return typ
}

func (n *typeAST) toType() (types.Type, error) {
	typ, err := n.Primary.toType()
	if err != nil {
		return nil, err
	}
	braced := n.Primary.Braced != nil
	if braced {
		if len(n.Suffixes) == 0 {
			return nil, errors.Errorf("%s: missing placement after {%s}", n.Pos, typ)
		}
		if n.Suffixes[0].Placement == nil {
			return nil, errors.Errorf("%s: cannot build a sequence of {%s}: a placement is required after a closing brace", n.Pos, typ)
		}
	}
	for i, sfx := range n.Suffixes {
		if sfx.Placement == nil {
			typ = types.NewSequence(typ)
			continue
		}
		lit, ok := placement.Lookup(*sfx.Placement)
		if !ok {
			return nil, errors.Errorf("%s: unknown placement %s", n.Pos, *sfx.Placement)
		}
		// Only the placement closing the braces is not all equal.
		allEqual := !braced || i > 0
		if typ, err = types.FederatedAt(typ, lit, allEqual); err != nil {
			return nil, errors.Wrapf(err, "%s", n.Pos)
		}
	}
	return typ, nil
}

func (n *primaryAST) toType() (types.Type, error) {
	switch {
	case n.Braced != nil:
		return n.Braced.toType()
	case n.Tuple != nil:
		return n.Tuple.toType()
	case n.Function != nil:
		return n.Function.toType()
	case n.Tensor != nil:
		return n.Tensor.toType()
	}
	return nil, errors.Errorf("empty type")
}

func (n *tupleAST) toType() (types.Type, error) {
	elts := make([]types.Element, len(n.Elements))
	for i, elt := range n.Elements {
		typ, err := elt.Type.toType()
		if err != nil {
			return nil, err
		}
		elts[i].Type = typ
		if elt.Name != nil {
			elts[i].Name = *elt.Name
		}
	}
	return types.NewNamedTuple(elts...), nil
}

func (n *functionAST) toType() (types.Type, error) {
	var param types.Type
	if n.Param != nil {
		var err error
		if param, err = n.Param.toType(); err != nil {
			return nil, err
		}
	}
	result, err := n.Result.toType()
	if err != nil {
		return nil, err
	}
	return types.NewFunction(param, result), nil
}

func (n *tensorAST) toType() (types.Type, error) {
	k := kind.FromString(n.DType)
	if k == kind.Invalid {
		return nil, errors.Errorf("unknown tensor data type %s", n.DType)
	}
	dims := make([]int, len(n.Dims))
	for i, dim := range n.Dims {
		if dim.Unknown {
			dims[i] = types.UnknownDim
			continue
		}
		dims[i] = *dim.Length
	}
	return types.NewTensor(k, dims...), nil
}
