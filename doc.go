// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package inifile reads, edits, and writes INI-style configuration files.

A Parser holds an in-memory document: a set of named sections, each a set of
unique keys mapped to string values. Every value is a string; there is no
typed access and no schema. The document is loaded from a file, queried and
mutated through the Parser's methods, and serialized back.

Two dialects are available, selected at construction through Options:

Basic recognizes comments, section headers, and key-value assignments.

Extended additionally recognizes repeated-key arrays and an experimental
nested-section naming convention. Writing the same array key on several lines
builds one ordered list:

	[Language]
	items[] = C
	items[] = Go

A section header beginning with a dot marks the section as a child of the
most recently opened section. The relation is recorded and can be inspected
with Children, but keys are never copied between related sections.

# Syntax

A line whose first character is a semicolon (';') is a comment and is
discarded. A line containing an equals sign ('=') is an assignment: the text
before the first '=' is the key and the text after it is the value. A
semicolon after the '=' truncates the value, so trailing comments on
assignment lines are dropped. Only ASCII space characters are trimmed from
the edges of keys and values; tabs and other whitespace are kept. A line
containing an opening bracket ('[') is a section header: the name runs from
the first '[' to the first ']' on the line, or to the end of the line if
there is no ']'. Any other line is ignored; there is no strict grammar
validation. Multi-line values and quoting are not supported.

Assignments seen before any section header belong to the unnamed section,
addressed as the empty string ("").

Keys are addressed either as separate section and key arguments or with the
qualified form "section/key", split at the first '/'. Keys whose names
contain '/' cannot be addressed in the qualified form.

File content is treated as opaque bytes: UTF-8 values pass through
unmodified. Output uses the host's native line terminator.

# Concurrency

A Parser performs no internal locking and must not be used from multiple
goroutines without external synchronization.
*/
package inifile
