// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast classifies ECMAScript syntax tree nodes by grammar category
// and detects the dangling-else ambiguity.
//
// Nodes are ESTree-shaped: only the type tag and, where relevant, the
// consequent, alternate and body children are consulted. Any type that
// implements Node may be classified; Object adapts a decoded JSON tree.
package ast // import "github.com/estools/esutils/ast"

// A Node is a syntax tree node identified by its ESTree type tag,
// such as "IfStatement".
type Node interface {
	Type() string
}

// An IfNode is a Node with the children of an if statement.
// An absent alternate is reported as a nil Node.
type IfNode interface {
	Node
	Consequent() Node
	Alternate() Node
}

// A BodyNode is a Node with a single body statement, such as a loop,
// a labeled statement or a with statement.
type BodyNode interface {
	Node
	Body() Node
}

// ESTree type tags consulted by this package.
const (
	ArrayExpression       = "ArrayExpression"
	AssignmentExpression  = "AssignmentExpression"
	BinaryExpression      = "BinaryExpression"
	CallExpression        = "CallExpression"
	ConditionalExpression = "ConditionalExpression"
	FunctionExpression    = "FunctionExpression"
	Identifier            = "Identifier"
	Literal               = "Literal"
	LogicalExpression     = "LogicalExpression"
	MemberExpression      = "MemberExpression"
	NewExpression         = "NewExpression"
	ObjectExpression      = "ObjectExpression"
	SequenceExpression    = "SequenceExpression"
	ThisExpression        = "ThisExpression"
	UnaryExpression       = "UnaryExpression"
	UpdateExpression      = "UpdateExpression"

	BlockStatement      = "BlockStatement"
	BreakStatement      = "BreakStatement"
	ContinueStatement   = "ContinueStatement"
	DebuggerStatement   = "DebuggerStatement"
	DoWhileStatement    = "DoWhileStatement"
	EmptyStatement      = "EmptyStatement"
	ExpressionStatement = "ExpressionStatement"
	ForInStatement      = "ForInStatement"
	ForStatement        = "ForStatement"
	IfStatement         = "IfStatement"
	LabeledStatement    = "LabeledStatement"
	ReturnStatement     = "ReturnStatement"
	SwitchStatement     = "SwitchStatement"
	ThrowStatement      = "ThrowStatement"
	TryStatement        = "TryStatement"
	VariableDeclaration = "VariableDeclaration"
	WhileStatement      = "WhileStatement"
	WithStatement       = "WithStatement"

	FunctionDeclaration = "FunctionDeclaration"
)

func set(tags ...string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, tag := range tags {
		m[tag] = true
	}
	return m
}

var (
	expressions = set(
		ArrayExpression, AssignmentExpression, BinaryExpression,
		CallExpression, ConditionalExpression, FunctionExpression,
		Identifier, Literal, LogicalExpression, MemberExpression,
		NewExpression, ObjectExpression, SequenceExpression,
		ThisExpression, UnaryExpression, UpdateExpression,
	)

	iterationStatements = set(
		DoWhileStatement, ForInStatement, ForStatement, WhileStatement,
	)

	statements = set(
		BlockStatement, BreakStatement, ContinueStatement,
		DebuggerStatement, DoWhileStatement, EmptyStatement,
		ExpressionStatement, ForInStatement, ForStatement, IfStatement,
		LabeledStatement, ReturnStatement, SwitchStatement,
		ThrowStatement, TryStatement, VariableDeclaration,
		WhileStatement, WithStatement,
	)
)

// IsExpression reports whether n is an ES5 expression node.
// It reports false for a nil node.
func IsExpression(n Node) bool {
	return n != nil && expressions[n.Type()]
}

// IsStatement reports whether n is an ES5 statement node.
// It reports false for a nil node.
func IsStatement(n Node) bool {
	return n != nil && statements[n.Type()]
}

// IsIterationStatement reports whether n is a do-while, for, for-in or
// while statement. It reports false for a nil node.
func IsIterationStatement(n Node) bool {
	return n != nil && iterationStatements[n.Type()]
}

// IsSourceElement reports whether n is a statement or a function
// declaration.
func IsSourceElement(n Node) bool {
	return IsStatement(n) || n != nil && n.Type() == FunctionDeclaration
}
