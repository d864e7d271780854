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
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestGolden(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "check", args: []string{"check", "testdata/check.yaml"}},
		{name: "errors", args: []string{"check", "testdata/errors.yaml"}, wantCode: 1},
		{name: "catalog", args: []string{"catalog"}},
		{name: "type", args: []string{"type", "< a = {int32}@CLIENTS, b = float32[2, ?]* >"}},
		{name: "type_tensor", args: []string{"type", "{float32[2,3]}@CLIENTS"}},
		{name: "type_unknown_axis", args: []string{"type", "int64[?]"}},
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(test.args, &out, &out)
			if code != test.wantCode {
				t.Errorf("got exit code %d but want %d. Output:\n%s", code, test.wantCode, out.String())
			}
			g.Assert(t, test.name, out.Bytes())
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"check", "testdata/missing.yaml"}, want: "cannot read script"},
		{args: []string{"type", "{int32}"}, want: "missing placement"},
		{args: []string{"type"}, want: "accepts 1 arg(s)"},
	}
	for _, test := range tests {
		var out bytes.Buffer
		if code := run(test.args, &out, &out); code != 1 {
			t.Errorf("%v: got exit code %d but want 1", test.args, code)
		}
		if !strings.Contains(out.String(), test.want) {
			t.Errorf("%v: got output %q but want an output containing %q", test.args, out.String(), test.want)
		}
	}
}

func TestVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--verbose", "check", "testdata/check.yaml"}, &stdout, &stderr); code != 0 {
		t.Fatalf("got exit code %d but want 0:\n%s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "script loaded") {
		t.Errorf("no debug log written on stderr:\n%s", stderr.String())
	}
	if strings.Contains(stdout.String(), "script loaded") {
		t.Errorf("debug log written on stdout:\n%s", stdout.String())
	}
}
