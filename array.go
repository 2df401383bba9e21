// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inifile

import (
	"fmt"
	"strings"
)

// arrayName strips the "[]" suffix from a key name, so array operations
// accept either the bare name or the suffixed form seen in files.
func arrayName(key string) string {
	if i := strings.Index(key, "[]"); i >= 0 {
		return key[:i]
	}
	return key
}

// IsArray reports whether the key, with any "[]" suffix stripped, is
// registered as an array in the named section. Always false on the Basic
// dialect.
func (p *Parser) IsArray(sectionName, key string) bool {
	return p.isArray(sectionName, key)
}

func (p *Parser) isArray(sectionName, key string) bool {
	_, ok := p.arrays[sectionName+"/"+arrayName(key)]
	return ok
}

// AddArray registers the elements as an ordered array under the key in the
// named section, creating the section if needed. It fails with an error
// wrapping ErrKeyAlreadyExist if the name is already in use in scalar or
// array form, or ErrCannotArray on the Basic dialect. At least one element
// is required.
func (p *Parser) AddArray(sectionName, key string, elements []string) error {
	base := arrayName(key)
	if p.dialect != Extended {
		return fmt.Errorf("inifile: add array %s/%s: %w", sectionName, base, ErrCannotArray)
	}
	if len(elements) == 0 {
		return fmt.Errorf("inifile: add array %s/%s: no elements", sectionName, base)
	}
	qualified := sectionName + "/" + base
	if _, ok := p.arrays[qualified]; ok {
		return fmt.Errorf("inifile: add array %s/%s: %w", sectionName, base, ErrKeyAlreadyExist)
	}
	if s, ok := p.doc.sections[sectionName]; ok {
		if _, ok := s.values[base]; ok {
			return fmt.Errorf("inifile: add array %s/%s: %w", sectionName, base, ErrKeyAlreadyExist)
		}
		if _, ok := s.values[base+"[]"]; ok {
			return fmt.Errorf("inifile: add array %s/%s: %w", sectionName, base, ErrKeyAlreadyExist)
		}
	}
	s := p.doc.ensure(sectionName)
	s.keys = append(s.keys, base+"[]")
	p.arrays[qualified] = append([]string(nil), elements...)
	return nil
}

// RemoveArray deletes an array key from the named section, removing the
// section entirely if it becomes empty. It fails with an error wrapping
// ErrKeyNotArray if the key is not registered as an array.
func (p *Parser) RemoveArray(sectionName, key string) error {
	base := arrayName(key)
	qualified := sectionName + "/" + base
	if _, ok := p.arrays[qualified]; !ok {
		return fmt.Errorf("inifile: remove array %s/%s: %w", sectionName, base, ErrKeyNotArray)
	}
	delete(p.arrays, qualified)
	if s, ok := p.doc.sections[sectionName]; ok {
		p.doc.dropKey(sectionName, s, base+"[]")
	}
	return nil
}

// ArrayLen returns the number of elements stored under the array key. It
// fails with an error wrapping ErrKeyNotArray if the key is not registered
// as an array.
func (p *Parser) ArrayLen(sectionName, key string) (int, error) {
	elems, ok := p.arrays[sectionName+"/"+arrayName(key)]
	if !ok {
		return 0, fmt.Errorf("inifile: array len %s/%s: %w", sectionName, arrayName(key), ErrKeyNotArray)
	}
	return len(elems), nil
}

// ArrayValue returns the element at index in the array key's sequence. It
// fails with an error wrapping ErrKeyNotArray if the key is not registered
// as an array, or ErrIndexOutOfRange if index is outside the sequence.
func (p *Parser) ArrayValue(sectionName, key string, index int) (string, error) {
	base := arrayName(key)
	elems, ok := p.arrays[sectionName+"/"+base]
	if !ok {
		return "", fmt.Errorf("inifile: array value %s/%s: %w", sectionName, base, ErrKeyNotArray)
	}
	if index < 0 || index >= len(elems) {
		return "", fmt.Errorf("inifile: array value %s/%s[%d]: %w", sectionName, base, index, ErrIndexOutOfRange)
	}
	return elems[index], nil
}

// Array returns a copy of the array key's elements in stored order. It fails
// with an error wrapping ErrKeyNotArray if the key is not registered as an
// array.
func (p *Parser) Array(sectionName, key string) ([]string, error) {
	base := arrayName(key)
	elems, ok := p.arrays[sectionName+"/"+base]
	if !ok {
		return nil, fmt.Errorf("inifile: array %s/%s: %w", sectionName, base, ErrKeyNotArray)
	}
	return append([]string(nil), elems...), nil
}

// Children returns the child section names recorded for the named parent
// from nested-section headers, in the order they were seen. The result is
// nil if no relation was recorded.
func (p *Parser) Children(sectionName string) []string {
	children := p.connections[sectionName]
	if len(children) == 0 {
		return nil
	}
	return append([]string(nil), children...)
}
