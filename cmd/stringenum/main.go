// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stringenum generates string conversion and marshaling
// methods for enum types marked with comment directives.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/jackson-nestelroad/stringenum/enumgen"
	"github.com/jackson-nestelroad/stringenum/logx"
)

// ConfigFile is the name of the optional configuration file read from
// the current directory. Its values override the defaults and are
// overridden by any flags set on the command line.
const ConfigFile = "stringenum.toml"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command of the stringenum tool.
func NewRootCmd() *cobra.Command {
	cfg := &enumgen.Config{}
	cfg.Defaults()
	var vv, v, q, watch bool
	cmd := &cobra.Command{
		Use:   "stringenum [dir]",
		Short: "generate string methods for enum types",
		Long: `stringenum generates string conversion, marshaling, and introspection
methods for enum types marked with //stringenum: comment directives.
It is designed to be run by go generate, on the package directory given
as its argument (or the current directory by default).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.Init(logx.LevelFromFlags(vv, v, q))
			if err := ApplyConfigFile(cfg, cmd); err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Dir = args[0]
			}
			if err := enumgen.Generate(cfg); err != nil {
				return err
			}
			if watch {
				return WatchAndGenerate(cfg)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file, relative to the package being generated for")
	f.StringVarP(&cfg.Transform, "transform", "t", cfg.Transform, "operation to apply to each value name to produce its string (snake, kebab, upper, lower, title, first, whitespace, ...)")
	f.StringVar(&cfg.TrimPrefix, "trim-prefix", cfg.TrimPrefix, "comma-separated list of prefixes to trim from each value name")
	f.StringVar(&cfg.AddPrefix, "add-prefix", cfg.AddPrefix, "prefix to add to each value name")
	f.BoolVar(&cfg.LineComment, "line-comment", cfg.LineComment, "use line comment text as the value string when present")
	f.BoolVar(&cfg.AcceptLower, "accept-lower", cfg.AcceptLower, "accept lowercase versions of value strings when setting from a string")
	f.BoolVar(&cfg.IsValid, "is-valid", cfg.IsValid, "generate an IsValid method")
	f.BoolVar(&cfg.Text, "text", cfg.Text, "generate text marshaling methods")
	f.BoolVar(&cfg.JSON, "json", cfg.JSON, "generate JSON marshaling methods")
	f.BoolVar(&cfg.YAML, "yaml", cfg.YAML, "generate YAML marshaling methods")
	f.BoolVar(&cfg.SQL, "sql", cfg.SQL, "generate SQL Scanner and Valuer methods")
	f.BoolVar(&cfg.Extend, "extend", cfg.Extend, "allow enum types to extend other enum types in the same package")
	f.BoolVarP(&watch, "watch", "w", false, "stay running and regenerate when the source files change")
	f.BoolVar(&vv, "vv", false, "debug verbosity")
	f.BoolVarP(&v, "verbose", "v", false, "info verbosity")
	f.BoolVarP(&q, "quiet", "q", false, "only print errors")
	return cmd
}

// ApplyConfigFile reads [ConfigFile] from the current directory, if it
// exists, and applies its values to the configuration for every option
// not explicitly set by a flag.
func ApplyConfigFile(cfg *enumgen.Config, cmd *cobra.Command) error {
	b, err := os.ReadFile(ConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	file := &enumgen.Config{}
	file.Defaults()
	if err := toml.Unmarshal(b, file); err != nil {
		return fmt.Errorf("error reading %s: %w", ConfigFile, err)
	}
	flags := cmd.Flags()
	if cfg.Dir == "." {
		cfg.Dir = file.Dir
	}
	if !flags.Changed("output") {
		cfg.Output = file.Output
	}
	if !flags.Changed("transform") {
		cfg.Transform = file.Transform
	}
	if !flags.Changed("trim-prefix") {
		cfg.TrimPrefix = file.TrimPrefix
	}
	if !flags.Changed("add-prefix") {
		cfg.AddPrefix = file.AddPrefix
	}
	if !flags.Changed("line-comment") {
		cfg.LineComment = file.LineComment
	}
	if !flags.Changed("accept-lower") {
		cfg.AcceptLower = file.AcceptLower
	}
	if !flags.Changed("is-valid") {
		cfg.IsValid = file.IsValid
	}
	if !flags.Changed("text") {
		cfg.Text = file.Text
	}
	if !flags.Changed("json") {
		cfg.JSON = file.JSON
	}
	if !flags.Changed("yaml") {
		cfg.YAML = file.YAML
	}
	if !flags.Changed("sql") {
		cfg.SQL = file.SQL
	}
	if !flags.Changed("extend") {
		cfg.Extend = file.Extend
	}
	return nil
}

// WatchAndGenerate stays running and regenerates whenever a Go source
// file in the configuration source directory changes. Changes arriving
// close together trigger a single regeneration.
func WatchAndGenerate(cfg *enumgen.Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	dirs, err := WatchDirs(cfg.Dir)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}
	slog.Info("watching for changes", "dirs", len(dirs))
	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watchedFile(ev.Name, cfg.Output) {
				continue
			}
			slog.Debug("source file changed", "file", ev.Name, "op", ev.Op)
			debounce.Reset(100 * time.Millisecond)
		case <-debounce.C:
			if err := enumgen.Generate(cfg); err != nil {
				slog.Error("error regenerating", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("error watching for changes", "err", err)
		}
	}
}

// WatchDirs returns the directories to watch for the given source
// directory pattern, expanding a trailing "/..." into all nested
// directories, skipping hidden and testdata directories.
func WatchDirs(pattern string) ([]string, error) {
	if !strings.HasSuffix(pattern, "/...") {
		return []string{pattern}, nil
	}
	root := strings.TrimSuffix(pattern, "/...")
	dirs := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata") {
			return fs.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

// watchedFile reports whether a change to the given file should
// trigger regeneration. Generated files, including the configured
// output file, are excluded so writing the output does not retrigger
// the watcher.
func watchedFile(name, output string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, ".go") &&
		!strings.HasSuffix(base, "_gen.go") &&
		base != filepath.Base(output) &&
		!strings.HasPrefix(base, ".")
}
