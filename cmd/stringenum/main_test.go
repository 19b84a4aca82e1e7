// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackson-nestelroad/stringenum/enumgen"
)

func TestApplyConfigFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	require.NoError(t, os.WriteFile(ConfigFile, []byte(`
output = "my_gen.go"
json = true
accept-lower = false
`), 0666))

	cmd := NewRootCmd()
	require.NoError(t, cmd.Flags().Set("accept-lower", "true"))
	cfg := &enumgen.Config{}
	cfg.Defaults()
	require.NoError(t, ApplyConfigFile(cfg, cmd))
	assert.Equal(t, "my_gen.go", cfg.Output)
	assert.True(t, cfg.JSON)
	// Flags set on the command line win over the file.
	assert.True(t, cfg.AcceptLower)
}

func TestApplyConfigFileMissing(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg := &enumgen.Config{}
	cfg.Defaults()
	require.NoError(t, ApplyConfigFile(cfg, NewRootCmd()))
	assert.Equal(t, "stringenum_gen.go", cfg.Output)
}

func TestWatchDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"a", "a/b", "testdata", ".git", "_tools"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0777))
	}

	dirs, err := WatchDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{root}, dirs)

	dirs, err = WatchDirs(root + "/...")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{root, filepath.Join(root, "a"), filepath.Join(root, "a", "b")}, dirs)
}

func TestWatchedFile(t *testing.T) {
	assert.True(t, watchedFile("fruits.go", "stringenum_gen.go"))
	assert.True(t, watchedFile("sub/fruits_test.go", "stringenum_gen.go"))
	assert.False(t, watchedFile("stringenum_gen.go", "stringenum_gen.go"))
	assert.False(t, watchedFile("fruits.txt", "stringenum_gen.go"))
	assert.False(t, watchedFile(".fruits.go.swp", "stringenum_gen.go"))

	// A custom output name must not retrigger its own regeneration.
	assert.False(t, watchedFile("sub/out.go", "out.go"))
	assert.True(t, watchedFile("fruits.go", "out.go"))
}
