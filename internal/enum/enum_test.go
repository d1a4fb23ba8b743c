// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"go/parser"
	"go/token"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	config := "../../syntax/kind.yaml"
	text, err := os.ReadFile(config)
	require.NoError(t, err)

	src, err := Generate("syntax", config, text)
	require.NoError(t, err)

	// The output must be a well-formed Go file.
	_, err = parser.ParseFile(token.NewFileSet(), "kind_enum.go", src, parser.ParseComments)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by github.com/bufbuild/filterexpr/internal/enum kind.yaml. DO NOT EDIT.")
	assert.Contains(t, out, "type Kind uint16")
	assert.Contains(t, out, "func (v Kind) String() string")
	assert.Contains(t, out, "func (v Kind) GoString() string")
	assert.Contains(t, out, "func KindByName(s string) (Kind, bool)")
	assert.Contains(t, out, `"GreaterThanOrEqualTo": GreaterThanOrEqualTo,`)
	assert.NotContains(t, out, `"Unknown": Unknown,`)
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	_, err := Generate("p", "x.yaml", []byte("- name: Foo\n"))
	require.Error(t, err)

	_, err = Generate("p", "x.yaml", []byte("- name: Foo\n  type: int\n  methods:\n  - kind: from-string\n"))
	require.Error(t, err)

	_, err = Generate("p", "x.yaml", []byte("{"))
	require.Error(t, err)

	require.Error(t, Main("kind.json"))
	assert.Equal(t, "a/kind_enum.go", outputPath("a/kind.yaml"))
}
