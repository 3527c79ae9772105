// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

func consequent(n Node) Node {
	if x, ok := n.(IfNode); ok {
		return x.Consequent()
	}
	return nil
}

func alternate(n Node) Node {
	if x, ok := n.(IfNode); ok {
		return x.Alternate()
	}
	return nil
}

func body(n Node) Node {
	if x, ok := n.(BodyNode); ok {
		return x.Body()
	}
	return nil
}

// TrailingStatement returns the sub-statement printed last when n is
// written without braces: the alternate of an if statement, or its
// consequent if it has none, and the body of a labeled, for, for-in,
// while or with statement. For any other node, or nil, it returns nil.
func TrailingStatement(n Node) Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case IfStatement:
		if alt := alternate(n); alt != nil {
			return alt
		}
		return consequent(n)
	case LabeledStatement, ForStatement, ForInStatement, WhileStatement, WithStatement:
		return body(n)
	}
	return nil
}

// IsProblematicIfStatement reports whether n is an if statement with an
// else branch whose consequent ends, possibly through nested trailing
// statements, in an if statement without an else. Printed without
// braces, such a tree would attach the else to the inner if, so a code
// generator must wrap the consequent in a block.
//
//	if (a) if (b) x(); else y();   // the else binds to if (b)
func IsProblematicIfStatement(n Node) bool {
	if n == nil || n.Type() != IfStatement || alternate(n) == nil {
		return false
	}
	for cur := consequent(n); cur != nil; cur = TrailingStatement(cur) {
		if cur.Type() == IfStatement && alternate(cur) == nil {
			return true
		}
	}
	return false
}
