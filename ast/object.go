// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// An Object is a node held as a JSON-style property map, as produced by
// decoding an ESTree document. Child properties may hold an Object, a
// map[string]interface{}, or any other Node; anything else, including
// null, is treated as absent.
type Object map[string]interface{}

var (
	_ IfNode   = Object(nil)
	_ BodyNode = Object(nil)
)

// Type returns the "type" property, or "" if it is missing or not a string.
func (o Object) Type() string {
	tag, _ := o["type"].(string)
	return tag
}

func (o Object) Consequent() Node { return o.child("consequent") }
func (o Object) Alternate() Node  { return o.child("alternate") }
func (o Object) Body() Node       { return o.child("body") }

func (o Object) child(key string) Node {
	switch x := o[key].(type) {
	case Object:
		if x != nil {
			return x
		}
	case map[string]interface{}:
		if x != nil {
			return Object(x)
		}
	case Node:
		return x
	}
	return nil
}
