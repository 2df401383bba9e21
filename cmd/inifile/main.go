// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// inifile is a small command-line tool for inspecting and editing INI
// configuration files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yourbase/inifile"
	"sigs.k8s.io/yaml"
	"zombiezen.com/go/log"
)

var (
	extended bool
	verbose  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "inifile",
		Short:         "Inspect and edit INI configuration files",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolVarP(&extended, "extended", "x", false, "enable array and nested-section syntax")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug output")

	dumpCmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print every section, key, and array element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.Context(), args[0])
		},
	}
	getCmd := &cobra.Command{
		Use:   "get FILE SECTION/KEY",
		Short: "Print a single value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.Context(), args[0], args[1])
		},
	}
	setCmd := &cobra.Command{
		Use:   "set FILE SECTION KEY VALUE",
		Short: "Create or update a key and save the file",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd.Context(), args[0], args[1], args[2], args[3])
		},
	}
	exportCmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Convert an INI file to YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0])
		},
	}
	rootCmd.AddCommand(dumpCmd, getCmd, setCmd, exportCmd)

	cobra.OnInitialize(initLog)
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}

func initLog() {
	minLevel := log.Info
	if verbose {
		minLevel = log.Debug
	}
	log.SetDefault(&log.LevelFilter{
		Min:    minLevel,
		Output: log.New(os.Stderr, "inifile: ", 0, nil),
	})
}

func parserOptions() *inifile.Options {
	opts := new(inifile.Options)
	if extended {
		opts.Dialect = inifile.Extended
	}
	return opts
}

func runDump(ctx context.Context, path string) error {
	p, err := inifile.Open(path, parserOptions())
	if err != nil {
		return err
	}
	for _, sectionName := range p.Sections() {
		if sectionName != "" {
			fmt.Printf("[%s]\n", sectionName)
		}
		keys, err := p.Keys(sectionName)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if p.IsArray(sectionName, key) {
				elems, err := p.Array(sectionName, key)
				if err != nil {
					return err
				}
				for i, e := range elems {
					fmt.Printf("%s[%d]: %s\n", trimArraySuffix(key), i, e)
				}
				continue
			}
			v, err := p.Get(sectionName, key)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", key, v)
		}
		if children := p.Children(sectionName); len(children) > 0 {
			log.Debugf(ctx, "section %s has children %q", sectionName, children)
		}
	}
	return nil
}

func runGet(ctx context.Context, path, ref string) error {
	p, err := inifile.Open(path, parserOptions())
	if err != nil {
		return err
	}
	v, err := p.Value(ref)
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

func runSet(ctx context.Context, path, sectionName, key, value string) error {
	var p *inifile.Parser
	if _, err := os.Stat(path); err == nil {
		p, err = inifile.Open(path, parserOptions())
		if err != nil {
			return err
		}
	} else {
		log.Debugf(ctx, "%s does not exist, starting empty", path)
		p = inifile.New(path, parserOptions())
	}
	err := p.AddKey(sectionName, key, value)
	if errors.Is(err, inifile.ErrKeyAlreadyExist) {
		err = p.SetValue(sectionName, key, value)
	}
	if err != nil {
		return err
	}
	if err := p.Save(); err != nil {
		return err
	}
	log.Infof(ctx, "saved %s", p.Path())
	return nil
}

func runExport(ctx context.Context, path string) error {
	p, err := inifile.Open(path, parserOptions())
	if err != nil {
		return err
	}
	doc := make(map[string]map[string]interface{})
	for _, sectionName := range p.Sections() {
		keys, err := p.Keys(sectionName)
		if err != nil {
			return err
		}
		m := make(map[string]interface{}, len(keys))
		for _, key := range keys {
			if p.IsArray(sectionName, key) {
				elems, err := p.Array(sectionName, key)
				if err != nil {
					return err
				}
				m[trimArraySuffix(key)] = elems
				continue
			}
			v, err := p.Get(sectionName, key)
			if err != nil {
				return err
			}
			m[key] = v
		}
		doc[sectionName] = m
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func trimArraySuffix(key string) string {
	if len(key) >= 2 && key[len(key)-2:] == "[]" {
		return key[:len(key)-2]
	}
	return key
}
