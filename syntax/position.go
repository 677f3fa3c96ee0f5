// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"fmt"
	"strings"
)

// A Position describes the location of a node in its source file.
// Positions are supplied by the external parser at construction time.
type Position struct {
	Path string // file name, may be empty for synthetic nodes
	Line int32  // 1-based line number; 0 if unknown
	Col  int32  // 1-based column number (rune); 0 if unknown
}

// MakePosition returns the position of the given line and column in path.
func MakePosition(path string, line, col int32) Position {
	return Position{Path: path, Line: line, Col: col}
}

// IsValid reports whether the position is valid.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	path := p.Path
	if path == "" {
		path = "<unknown>"
	}
	var b strings.Builder
	b.WriteString(path)
	if p.Line > 0 {
		fmt.Fprintf(&b, ":%d", p.Line)
		if p.Col > 0 {
			fmt.Fprintf(&b, ":%d", p.Col)
		}
	}
	return b.String()
}
