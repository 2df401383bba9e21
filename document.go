// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inifile

import (
	"fmt"
	"strings"
)

// document is a two-level mapping of section name to key-value pairs.
// Sections and keys keep their insertion order for serialization; lookup
// goes through the maps. A section with zero keys is removed outright, so
// empty sections never persist.
type document struct {
	sections map[string]*section
	order    []string
}

type section struct {
	// values holds the scalar entries. Array keys have no scalar value; they
	// appear only in keys (under their "name[]" display form) and in the
	// parser's array index.
	values map[string]string
	keys   []string
}

// ensure returns the named section, creating and ordering it if absent.
// The unnamed section sorts first so its keys serialize before any header.
func (d *document) ensure(name string) *section {
	if s, ok := d.sections[name]; ok {
		return s
	}
	s := &section{values: make(map[string]string)}
	d.sections[name] = s
	if name == "" {
		d.order = append([]string{""}, d.order...)
	} else {
		d.order = append(d.order, name)
	}
	return s
}

// put stores a scalar value, overwriting any previous value for the key and
// keeping the key's first-seen position.
func (d *document) put(sectionName, key, value string) {
	s := d.ensure(sectionName)
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// dropKey removes name from the section's order and deletes the section
// itself once no keys remain.
func (d *document) dropKey(sectionName string, s *section, name string) {
	for i, k := range s.keys {
		if k == name {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	if len(s.keys) > 0 {
		return
	}
	delete(d.sections, sectionName)
	for i, n := range d.order {
		if n == sectionName {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Exists reports whether ref names a known section ("name") or a known key
// ("section/key", split at the first '/'). For a qualified key it reports
// false if either the section or the key is absent. A key written with the
// "[]" suffix is looked up as an array.
func (p *Parser) Exists(ref string) bool {
	i := strings.IndexByte(ref, '/')
	if i < 0 {
		_, ok := p.doc.sections[ref]
		return ok
	}
	sectionName, key := ref[:i], ref[i+1:]
	s, ok := p.doc.sections[sectionName]
	if !ok {
		return false
	}
	if base, suffixed := strings.CutSuffix(key, "[]"); suffixed {
		if _, ok := p.arrays[sectionName+"/"+base]; ok {
			return true
		}
	}
	_, ok = s.values[key]
	return ok
}

// Get returns the value stored under the key in the named section. It fails
// with an error wrapping ErrKeyNotFound if the section or key is absent, or
// ErrKeyIsArray if the key is registered as an array.
func (p *Parser) Get(sectionName, key string) (string, error) {
	if p.isArray(sectionName, key) {
		return "", fmt.Errorf("inifile: get %s/%s: %w", sectionName, key, ErrKeyIsArray)
	}
	if s, ok := p.doc.sections[sectionName]; ok {
		if v, ok := s.values[key]; ok {
			return v, nil
		}
	}
	return "", fmt.Errorf("inifile: get %s/%s: %w", sectionName, key, ErrKeyNotFound)
}

// Value returns the value addressed by the qualified key "section/key".
// A ref without a '/' fails with ErrKeyNotFound.
func (p *Parser) Value(ref string) (string, error) {
	i := strings.IndexByte(ref, '/')
	if i < 0 {
		return "", fmt.Errorf("inifile: value %s: %w", ref, ErrKeyNotFound)
	}
	return p.Get(ref[:i], ref[i+1:])
}

// SetValue replaces the value of an existing key. It fails with an error
// wrapping ErrKeyNotFound if the key is absent, or ErrKeyIsArray if the key
// is registered as an array. Use AddKey to create keys.
func (p *Parser) SetValue(sectionName, key, value string) error {
	if p.isArray(sectionName, key) {
		return fmt.Errorf("inifile: set %s/%s: %w", sectionName, key, ErrKeyIsArray)
	}
	if s, ok := p.doc.sections[sectionName]; ok {
		if _, ok := s.values[key]; ok {
			s.values[key] = value
			return nil
		}
	}
	return fmt.Errorf("inifile: set %s/%s: %w", sectionName, key, ErrKeyNotFound)
}

// AddKey inserts a new key into the named section, creating the section if
// needed. It fails with an error wrapping ErrCannotArray if the key name
// contains the "[]" array suffix, or ErrKeyAlreadyExist if the name is
// already in use as a scalar or as an array.
func (p *Parser) AddKey(sectionName, key, value string) error {
	if strings.Contains(key, "[]") {
		return fmt.Errorf("inifile: add %s/%s: %w", sectionName, key, ErrCannotArray)
	}
	if _, ok := p.arrays[sectionName+"/"+key]; ok {
		return fmt.Errorf("inifile: add %s/%s: %w", sectionName, key, ErrKeyAlreadyExist)
	}
	if s, ok := p.doc.sections[sectionName]; ok {
		if _, ok := s.values[key]; ok {
			return fmt.Errorf("inifile: add %s/%s: %w", sectionName, key, ErrKeyAlreadyExist)
		}
	}
	p.doc.put(sectionName, key, value)
	return nil
}

// RemoveKey deletes a key from the named section, removing the section
// entirely if it becomes empty. It fails with an error wrapping
// ErrKeyNotFound if the section or key is absent.
func (p *Parser) RemoveKey(sectionName, key string) error {
	s, ok := p.doc.sections[sectionName]
	if !ok {
		return fmt.Errorf("inifile: remove %s/%s: %w", sectionName, key, ErrKeyNotFound)
	}
	if _, ok := s.values[key]; !ok {
		return fmt.Errorf("inifile: remove %s/%s: %w", sectionName, key, ErrKeyNotFound)
	}
	delete(s.values, key)
	p.doc.dropKey(sectionName, s, key)
	return nil
}

// Sections returns the section names in insertion order.
func (p *Parser) Sections() []string {
	return append([]string(nil), p.doc.order...)
}

// Keys returns the key names of the named section in insertion order. Array
// keys are reported with their "[]" suffix. It fails with an error wrapping
// ErrKeyNotFound if the section is absent.
func (p *Parser) Keys(sectionName string) ([]string, error) {
	s, ok := p.doc.sections[sectionName]
	if !ok {
		return nil, fmt.Errorf("inifile: keys %s: %w", sectionName, ErrKeyNotFound)
	}
	return append([]string(nil), s.keys...), nil
}
