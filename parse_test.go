// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inifile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Ensure Parser satisfies the encoding.Text* interfaces.
var _ interface {
	MarshalText() ([]byte, error)
	UnmarshalText([]byte) error
} = new(Parser)

// joinLines builds file content terminated with the serializer's line ending.
func joinLines(lines ...string) string {
	return strings.Join(lines, lineEnding) + lineEnding
}

// snapshot returns the scalar content of every section. Array keys have no
// scalar entry, so sections holding only arrays come back empty.
func snapshot(p *Parser) map[string]map[string]string {
	got := make(map[string]map[string]string)
	for name, s := range p.doc.sections {
		got[name] = s.values
	}
	return got
}

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		name         string
		dialect      Dialect
		source       string
		want         map[string]map[string]string
		wantArrays   map[string][]string
		wantChildren map[string][]string
	}{
		{
			name: "Empty",
		},
		{
			name:   "GlobalKey",
			source: "version = 1.0\n",
			want: map[string]map[string]string{
				"": {"version": "1.0"},
			},
		},
		{
			name:   "Section",
			source: "[General]\nversion = 1.0\n",
			want: map[string]map[string]string{
				"General": {"version": "1.0"},
			},
		},
		{
			name:   "InlineComment",
			source: "key = value ; note\n",
			want: map[string]map[string]string{
				"": {"key": "value"},
			},
		},
		{
			name:   "CommentLine",
			source: "; key = value\nother = 1\n",
			want: map[string]map[string]string{
				"": {"other": "1"},
			},
		},
		{
			name:   "SemicolonNotFirstIsNotComment",
			source: " ; key = value\n",
			want: map[string]map[string]string{
				"": {"; key": "value"},
			},
		},
		{
			name:   "OnlySpacesTrimmed",
			source: "a\t=\tb \n",
			want: map[string]map[string]string{
				"": {"a\t": "\tb"},
			},
		},
		{
			name:   "HeaderMissingCloseBracket",
			source: "[foo\nbar = 1\n",
			want: map[string]map[string]string{
				"foo": {"bar": "1"},
			},
		},
		{
			name:   "HeaderSurroundedByJunk",
			source: "xx[foo]yy\nbar = 1\n",
			want: map[string]map[string]string{
				"foo": {"bar": "1"},
			},
		},
		{
			name:   "AssignmentBeatsHeader",
			source: "[foo]\n[a] = b\n",
			want: map[string]map[string]string{
				"foo": {"[a]": "b"},
			},
		},
		{
			name:   "ReopenedSection",
			source: "[foo]\na = 1\n[bar]\nb = 2\n[foo]\nc = 3\n",
			want: map[string]map[string]string{
				"foo": {"a": "1", "c": "3"},
				"bar": {"b": "2"},
			},
		},
		{
			name:   "DuplicateKeyLastWins",
			source: "[foo]\na = 1\na = 2\n",
			want: map[string]map[string]string{
				"foo": {"a": "2"},
			},
		},
		{
			name:   "JunkLinesIgnored",
			source: "!!!\n\nhello world\n[foo]\nbar = 1\n",
			want: map[string]map[string]string{
				"foo": {"bar": "1"},
			},
		},
		{
			name:   "HeaderAloneCreatesNoSection",
			source: "[foo]\n[bar]\nb = 1\n",
			want: map[string]map[string]string{
				"bar": {"b": "1"},
			},
		},
		{
			name:    "ArraySuffixIsLiteralOnBasic",
			dialect: Basic,
			source:  "[L]\nitems[] = a\nitems[] = b\n",
			want: map[string]map[string]string{
				"L": {"items[]": "b"},
			},
		},
		{
			name:    "Array",
			dialect: Extended,
			source:  "[L]\nitems[] = a\nitems[] = b\n",
			want: map[string]map[string]string{
				"L": {},
			},
			wantArrays: map[string][]string{
				"L/items": {"a", "b"},
			},
		},
		{
			name:    "ArrayMixedWithScalars",
			dialect: Extended,
			source:  "[L]\nname = x\nitems[] = a\nitems[] = b\nlast = y\n",
			want: map[string]map[string]string{
				"L": {"name": "x", "last": "y"},
			},
			wantArrays: map[string][]string{
				"L/items": {"a", "b"},
			},
		},
		{
			name:    "NestedChild",
			dialect: Extended,
			source:  "[Parent]\nk = v\n[.Child]\nc = 1\n",
			want: map[string]map[string]string{
				"Parent":       {"k": "v"},
				"Parent.Child": {"c": "1"},
			},
			wantChildren: map[string][]string{
				"Parent": {"Child"},
			},
		},
		{
			name:    "DottedHeader",
			dialect: Extended,
			source:  "[A.B]\nx = 1\n",
			want: map[string]map[string]string{
				"A.B": {"x": "1"},
			},
			wantChildren: map[string][]string{
				"A": {"B"},
			},
		},
		{
			name:    "NestedSyntaxInertOnBasic",
			dialect: Basic,
			source:  "[Parent]\nk = v\n[.Child]\nc = 1\n",
			want: map[string]map[string]string{
				"Parent": {"k": "v"},
				".Child": {"c": "1"},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := New("", &Options{Dialect: test.dialect})
			if err := p.UnmarshalText([]byte(test.source)); err != nil {
				t.Fatal("UnmarshalText:", err)
			}
			if diff := cmp.Diff(test.want, snapshot(p), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("sections (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.wantArrays, p.arrays, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("arrays (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.wantChildren, p.connections, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("connections (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshalText(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		source  string
		want    string
	}{
		{
			name: "Empty",
		},
		{
			name:   "Section",
			source: "[General]\nversion=1.0\n",
			want:   joinLines("[General]", "version = 1.0", ""),
		},
		{
			name:   "GlobalBeforeSections",
			source: "g = 1\n[foo]\nbar = baz\n",
			want:   joinLines("g = 1", "", "[foo]", "bar = baz", ""),
		},
		{
			name:   "InlineCommentNotReemitted",
			source: "[foo]\nkey = value ; note\n",
			want:   joinLines("[foo]", "key = value", ""),
		},
		{
			name:   "KeyOrderPreserved",
			source: "[foo]\nb = 2\na = 1\n",
			want:   joinLines("[foo]", "b = 2", "a = 1", ""),
		},
		{
			name:    "Array",
			dialect: Extended,
			source:  "[Language]\nitems[] = C\nitems[] = Go\nname = list\n",
			want:    joinLines("[Language]", "items[] = C", "items[] = Go", "name = list", ""),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := New("", &Options{Dialect: test.dialect})
			if err := p.UnmarshalText([]byte(test.source)); err != nil {
				t.Fatal("UnmarshalText:", err)
			}
			got, err := p.MarshalText()
			if err != nil {
				t.Fatal("MarshalText:", err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("MarshalText (-want +got):\n%s", diff)
			}
		})
	}
}

// Parsing serialized output again must reproduce the same sections, values,
// and arrays in the same order.
func TestRoundTrip(t *testing.T) {
	const source = "version = 1.0\n" +
		"[Profile]\n" +
		"Name = John ; full name\n" +
		"Age = 25\n" +
		"[Language]\n" +
		"items[] = C\n" +
		"items[] = C++\n" +
		"items[] = Go\n" +
		"[Profile]\n" +
		"Gender = Male\n"
	p := New("", &Options{Dialect: Extended})
	if err := p.UnmarshalText([]byte(source)); err != nil {
		t.Fatal("UnmarshalText:", err)
	}
	out, err := p.MarshalText()
	if err != nil {
		t.Fatal("MarshalText:", err)
	}
	q := New("", &Options{Dialect: Extended})
	if err := q.UnmarshalText(out); err != nil {
		t.Fatal("UnmarshalText:", err)
	}
	if diff := cmp.Diff(snapshot(p), snapshot(q)); diff != "" {
		t.Errorf("sections after round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p.arrays, q.arrays); diff != "" {
		t.Errorf("arrays after round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p.Sections(), q.Sections()); diff != "" {
		t.Errorf("section order after round trip (-want +got):\n%s", diff)
	}
	out2, err := q.MarshalText()
	if err != nil {
		t.Fatal("MarshalText:", err)
	}
	if diff := cmp.Diff(string(out), string(out2)); diff != "" {
		t.Errorf("second serialization differs (-want +got):\n%s", diff)
	}
}
