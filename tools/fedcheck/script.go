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
	"os"

	"github.com/Denliness/federated/build/intrinsics"
	"github.com/Denliness/federated/build/types/typestr"
	"github.com/Denliness/federated/build/value"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type (
	// script is a list of intrinsic calls.
	script struct {
		Calls []call `yaml:"calls"`
	}

	// call of an intrinsic identified by its uri.
	call struct {
		// Name binds the result so that later calls can use it as an argument.
		Name      string `yaml:"name"`
		Intrinsic string `yaml:"intrinsic"`
		Args      []arg  `yaml:"args"`
	}

	// arg is either a named value of a given type or the result of a previous call.
	arg struct {
		Name   string `yaml:"name"`
		Type   string `yaml:"type"`
		Result string `yaml:"result"`
	}
)

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read script")
	}
	s := &script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrapf(err, "cannot decode script %s", path)
	}
	return s, nil
}

func (a arg) toValue(results map[string]*value.Value) (*value.Value, error) {
	if a.Result != "" {
		val, ok := results[a.Result]
		if !ok {
			return nil, errors.Errorf("unknown result %q", a.Result)
		}
		return val, nil
	}
	if a.Name == "" {
		return nil, errors.Errorf("missing name")
	}
	typ, err := typestr.Parse(a.Type)
	if err != nil {
		return nil, err
	}
	return value.Ref(a.Name, typ), nil
}

// check builds all the calls of the script and writes their results.
// Failing calls are skipped and their errors returned together.
func (s *script) check(logger *zap.Logger, w io.Writer) error {
	results := make(map[string]*value.Value)
	var errs error
	for i, c := range s.Calls {
		logger.Debug("building call", zap.Int("call", i), zap.String("intrinsic", c.Intrinsic))
		val, err := c.build(results)
		if err != nil {
			logger.Debug("call failed", zap.Int("call", i), zap.Error(err))
			errs = multierr.Append(errs, errors.WithMessagef(err, "call %d (%s)", i, c.Intrinsic))
			continue
		}
		if c.Name == "" {
			fmt.Fprintf(w, "%s -> %s\n", val, val.Type())
			continue
		}
		fmt.Fprintf(w, "%s = %s -> %s\n", c.Name, val, val.Type())
		results[c.Name] = value.Ref(c.Name, val.Type())
	}
	return errs
}

func (c call) build(results map[string]*value.Value) (*value.Value, error) {
	args := make([]any, len(c.Args))
	for i, a := range c.Args {
		val, err := a.toValue(results)
		if err != nil {
			return nil, errors.WithMessagef(err, "argument %d", i)
		}
		args[i] = val
	}
	return intrinsics.Apply(c.Intrinsic, args...)
}
