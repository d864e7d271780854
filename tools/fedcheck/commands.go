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

package main

import (
	"fmt"
	"io"

	"github.com/Denliness/federated/build/intrinsics/defs"
	"github.com/Denliness/federated/build/types"
	"github.com/Denliness/federated/build/types/typestr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <script.yaml>",
		Short: "Build the intrinsic calls of a script and print their types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScript(args[0])
			if err != nil {
				return err
			}
			opts.logger.Debug("script loaded", zap.String("path", args[0]), zap.Int("calls", len(s.Calls)))
			return s.check(opts.logger, cmd.OutOrStdout())
		},
	}
}

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the intrinsics with their type templates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, def := range defs.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", def.URI(), def.Template())
			}
		},
	}
}

func newTypeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "type <notation>",
		Short: "Parse a type and print its canonical notation",
		Long: `Parse a type and print its canonical notation.

For a tensor, or a federated tensor, also print the shape of the arrays
holding the tensor in the backend, if the tensor has one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := typestr.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), typ)
			printShape(cmd.OutOrStdout(), typ)
			return nil
		},
	}
}

func printShape(w io.Writer, typ types.Type) {
	if member := types.Member(typ); member != nil {
		typ = member
	}
	tensor, ok := typ.(*types.Tensor)
	if !ok {
		return
	}
	sh, ok := tensor.Shape()
	if !ok {
		fmt.Fprintln(w, "backend shape: none")
		return
	}
	fmt.Fprintf(w, "backend shape: %s, %d bytes\n", sh, sh.ByteSize())
}
