// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inifile

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// parseState accumulates the result of one parse call. The current section
// lives here rather than in the Parser, so concurrent parses on different
// Parser instances can never interfere.
type parseState struct {
	dialect     Dialect
	doc         document
	arrays      map[string][]string
	connections map[string][]string

	// section is the name of the most recently opened section, the context
	// for assignment lines. Empty until the first header.
	section string
}

// line classifies a single input line and applies it to the state. The
// checks run in priority order: comment, assignment, section header. Lines
// matching none of them are skipped silently.
func (st *parseState) line(ln string) {
	if strings.HasPrefix(ln, ";") {
		return
	}
	if eq := strings.IndexByte(ln, '='); eq >= 0 {
		key := trimSpaces(ln[:eq])
		val := ln[eq+1:]
		if semi := strings.IndexByte(val, ';'); semi >= 0 {
			val = val[:semi]
		}
		val = trimSpaces(val)
		if st.dialect == Extended {
			if i := strings.Index(key, "[]"); i >= 0 {
				st.appendArray(key[:i], val)
				return
			}
		}
		st.doc.put(st.section, key, val)
		return
	}
	if open := strings.IndexByte(ln, '['); open >= 0 {
		name := ln[open+1:]
		if end := strings.IndexByte(ln, ']'); end > open {
			name = ln[open+1 : end]
		}
		st.openSection(name)
	}
}

// appendArray adds one element to the array key's sequence, registering the
// key in the owning section's order on first sight.
func (st *parseState) appendArray(base, val string) {
	qualified := st.section + "/" + base
	if _, ok := st.arrays[qualified]; !ok {
		s := st.doc.ensure(st.section)
		s.keys = append(s.keys, base+"[]")
	}
	st.arrays[qualified] = append(st.arrays[qualified], val)
}

// openSection makes name the current section. On the Extended dialect a
// leading dot marks a child of the current section, and an interior dot
// records a parent/child relation from the name's own halves; either way
// only the relation is stored, keys are never copied down.
func (st *parseState) openSection(name string) {
	if st.dialect == Extended {
		if strings.HasPrefix(name, ".") {
			st.connections[st.section] = append(st.connections[st.section], name[1:])
			name = st.section + name
		} else if dot := strings.IndexByte(name, '.'); dot >= 0 {
			st.connections[name[:dot]] = append(st.connections[name[:dot]], name[dot+1:])
		}
	}
	st.section = name
}

// trimSpaces removes leading and trailing ASCII spaces. Tabs and other
// whitespace are significant and kept.
func trimSpaces(s string) string {
	return strings.Trim(s, " ")
}

// UnmarshalText parses data line by line, replacing the parser's document,
// arrays, and recorded nested-section relations.
func (p *Parser) UnmarshalText(data []byte) error {
	st := &parseState{
		dialect:     p.dialect,
		doc:         document{sections: make(map[string]*section)},
		arrays:      make(map[string][]string),
		connections: make(map[string][]string),
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		st.line(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("inifile: parse: %w", err)
	}
	p.doc = st.doc
	p.arrays = st.arrays
	p.connections = st.connections
	return nil
}

// MarshalText serializes the document: each section's header followed by its
// keys in insertion order and a blank separator line. The unnamed section is
// written first with no header. Array keys produce one "key[] = element"
// line per element in stored order.
func (p *Parser) MarshalText() ([]byte, error) {
	var buf []byte
	for _, name := range p.doc.order {
		s := p.doc.sections[name]
		if name != "" {
			buf = append(buf, '[')
			buf = append(buf, name...)
			buf = append(buf, ']')
			buf = append(buf, lineEnding...)
		}
		for _, k := range s.keys {
			if base, suffixed := strings.CutSuffix(k, "[]"); suffixed {
				if elems, ok := p.arrays[name+"/"+base]; ok {
					for _, e := range elems {
						buf = appendAssignment(buf, k, e)
					}
					continue
				}
			}
			buf = appendAssignment(buf, k, s.values[k])
		}
		buf = append(buf, lineEnding...)
	}
	return buf, nil
}

func appendAssignment(dst []byte, key, value string) []byte {
	dst = append(dst, key...)
	dst = append(dst, " = "...)
	dst = append(dst, value...)
	dst = append(dst, lineEnding...)
	return dst
}
