// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inifile

import (
	"fmt"
	"os"
	"runtime"
)

// A Dialect selects the syntax a Parser recognizes.
type Dialect int

const (
	// Basic recognizes comments, section headers, and key-value assignments.
	Basic Dialect = iota

	// Extended additionally recognizes repeated-key arrays ("key[] = value")
	// and nested-section headers ("[.Child]", "[Parent.Child]").
	Extended
)

// Options holds optional parameters for New and Open. The zero value selects
// the Basic dialect.
type Options struct {
	// Dialect selects the recognized syntax.
	Dialect Dialect
}

// A Parser holds an INI document in memory and reads and writes it from a
// file. Parsers are not safe for concurrent use; callers must synchronize
// access externally.
type Parser struct {
	path    string
	dialect Dialect

	doc document

	// arrays maps "section/key" (key without the [] suffix) to the ordered
	// elements of an array key. Populated only on the Extended dialect.
	arrays map[string][]string

	// connections maps a parent section name to the child names recorded
	// from nested-section headers. The relation is tracked, never resolved.
	connections map[string][]string
}

// New returns an empty Parser that records path for later Load and Save
// calls. The file is not opened. Nil options are treated identically as
// passing the zero value.
func New(path string, opts *Options) *Parser {
	p := &Parser{
		path:        path,
		doc:         document{sections: make(map[string]*section)},
		arrays:      make(map[string][]string),
		connections: make(map[string][]string),
	}
	if opts != nil {
		p.dialect = opts.Dialect
	}
	return p
}

// Open returns a Parser loaded from the file at path. It fails with an error
// wrapping ErrFileLoad if the path cannot be opened for reading.
func Open(path string, opts *Options) (*Parser, error) {
	p := New(path, opts)
	if !canOpen(path) {
		return nil, fmt.Errorf("inifile: open %s: %w", path, ErrFileLoad)
	}
	if err := p.Load(path); err != nil {
		return nil, err
	}
	return p, nil
}

// Path returns the file path the parser reads from and writes to.
func (p *Parser) Path() string { return p.path }

// SetPath changes the file path used by Load and Save.
func (p *Parser) SetPath(path string) { p.path = path }

// Load reads the whole file at path and replaces the parser's document,
// arrays, and recorded nested-section relations with its parsed content.
// The path is recorded for later Save calls. Load fails with an error
// wrapping ErrFileLoad if the path cannot be opened for reading.
func (p *Parser) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("inifile: load %s: %w", path, ErrFileLoad)
	}
	p.path = path
	return p.UnmarshalText(data)
}

// Save serializes the document and writes it to the recorded path. It fails
// with an error wrapping ErrFileLoad if the destination cannot be opened
// for writing.
func (p *Parser) Save() error {
	return p.SaveTo(p.path)
}

// SaveTo serializes the document and writes it to the file at path. The
// recorded path is left unchanged.
func (p *Parser) SaveTo(path string) error {
	data, err := p.MarshalText()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o666); err != nil {
		return fmt.Errorf("inifile: save %s: %w", path, ErrFileLoad)
	}
	return nil
}

// canOpen reports whether the path can be opened for reading.
func canOpen(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// lineEnding is the terminator written after every serialized line.
var lineEnding = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()
