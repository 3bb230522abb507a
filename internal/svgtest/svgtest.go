// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package svgtest parses generated SVG documents back into a shallow tree so
// that tests can inspect the children of the root element.
package svgtest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
)

// Node is an element with its attributes and child elements. Comments are
// dropped.
type Node struct {
	Name     string
	Attrs    []xml.Attr
	Children []*Node
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Get returns the value of the named attribute or an empty string.
func (n *Node) Get(name string) string {
	v, _ := n.Attr(name)
	return v
}

// Count returns the number of direct children with the given name.
func (n *Node) Count(name string) int {
	c := 0
	for _, ch := range n.Children {
		if ch.Name == name {
			c++
		}
	}
	return c
}

// Parse decodes b strictly and returns the root element.
func Parse(b []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(b))
	dec.Strict = true
	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local, Attrs: t.Copy().Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("more than one root element")
				}
				root = n
			} else {
				p := stack[len(stack)-1]
				p.Children = append(p.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, fmt.Errorf("no root element")
	}
	return root, nil
}

var commentRe = regexp.MustCompile(`<!-- SVG Generated on [^>]*-->`)

// StripComment removes the generation date comment.
func StripComment(b []byte) []byte { return commentRe.ReplaceAll(b, nil) }
