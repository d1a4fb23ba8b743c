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


package corpora

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Diff("a\nb\n", "a\nb\n"))

	diff := Diff("a\nc\n", "a\nb\n")
	assert.Contains(t, diff, "--- want")
	assert.Contains(t, diff, "+++ got")
	assert.Contains(t, diff, "\033[1;91m-b")
	assert.Contains(t, diff, "\033[1;92m+c")
}

func TestWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, write(path, "hello\n"))
	text, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(text))

	require.NoError(t, write(path, ""))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing a file that is already gone is fine.
	require.NoError(t, write(path, ""))
}
