// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report describes classification results as protocol buffer
// Struct messages and encodes them in text or JSON form.
//
// It also decodes ESTree JSON documents into ast.Object trees.
package report // import "github.com/estools/esutils/report"

import (
	"fmt"

	"github.com/estools/esutils/ast"
	"github.com/estools/esutils/keyword"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Output formats accepted by Marshal.
const (
	Text = "text"
	JSON = "json"
)

// Word describes how word is classified under the ES5 and ES6 grammars.
// Identifier names are checked with v, whose cache may be shared.
func Word(v *keyword.Validator, word string, strict bool) *structpb.Struct {
	b := structpb.NewBoolValue
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"word":                structpb.NewStringValue(word),
		"strict":              b(strict),
		"keyword_es5":         b(keyword.IsKeywordES5(word, strict)),
		"keyword_es6":         b(keyword.IsKeywordES6(word, strict)),
		"reserved_word_es5":   b(keyword.IsReservedWordES5(word, strict)),
		"reserved_word_es6":   b(keyword.IsReservedWordES6(word, strict)),
		"restricted_word":     b(keyword.IsRestrictedWord(word)),
		"identifier_name_es5": b(v.IsIdentifierNameES5(word)),
		"identifier_name_es6": b(v.IsIdentifierNameES6(word)),
		"identifier_es5":      b(v.IsIdentifierES5(word, strict)),
		"identifier_es6":      b(v.IsIdentifierES6(word, strict)),
	}}
}

// Node describes the grammar categories of n. The "trailing" field holds
// the type of n's trailing statement, or null if it has none.
func Node(n ast.Node) *structpb.Struct {
	b := structpb.NewBoolValue
	tag := ""
	if n != nil {
		tag = n.Type()
	}
	trailing := structpb.NewNullValue()
	if t := ast.TrailingStatement(n); t != nil {
		trailing = structpb.NewStringValue(t.Type())
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"type":                structpb.NewStringValue(tag),
		"expression":          b(ast.IsExpression(n)),
		"statement":           b(ast.IsStatement(n)),
		"iteration_statement": b(ast.IsIterationStatement(n)),
		"source_element":      b(ast.IsSourceElement(n)),
		"problematic_if":      b(ast.IsProblematicIfStatement(n)),
		"trailing":            trailing,
	}}
}

// Tables lists the word tables: keywords, strict mode reserved words,
// literals and restricted words.
func Tables() *structpb.Struct {
	list := func(words []string) *structpb.Value {
		values := make([]*structpb.Value, len(words))
		for i, w := range words {
			values[i] = structpb.NewStringValue(w)
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values})
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"keywords":                   list(keyword.Keywords()),
		"strict_mode_reserved_words": list(keyword.StrictModeReservedWords()),
		"literals":                   list(keyword.Literals()),
		"restricted_words":           list(keyword.RestrictedWords()),
	}}
}

// Marshal encodes msg in the named format, Text or JSON.
func Marshal(msg proto.Message, format string) ([]byte, error) {
	switch format {
	case Text:
		return prototext.MarshalOptions{Multiline: true, Indent: "\t"}.Marshal(msg)
	case JSON:
		return protojson.MarshalOptions{Multiline: true, Indent: "\t"}.Marshal(msg)
	}
	return nil, fmt.Errorf("unsupported output format: %q", format)
}

// DecodeNode decodes an ESTree JSON document whose top level is an object.
func DecodeNode(data []byte) (ast.Object, error) {
	var v structpb.Value
	if err := protojson.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding ESTree JSON: %w", err)
	}
	s := v.GetStructValue()
	if s == nil {
		return nil, fmt.Errorf("decoding ESTree JSON: top level is not an object")
	}
	return ast.Object(s.AsMap()), nil
}

// Elements returns the statements of a Program node's body, or n itself
// if n is not a Program. Body elements that are not objects are skipped.
func Elements(n ast.Object) []ast.Node {
	if n.Type() != "Program" {
		return []ast.Node{n}
	}
	body, _ := n["body"].([]interface{})
	var elems []ast.Node
	for _, x := range body {
		if m, ok := x.(map[string]interface{}); ok {
			elems = append(elems, ast.Object(m))
		}
	}
	return elems
}
