// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package groovytar

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidDocument is returned by Verify for input that is not a complete
// SVG document.
var ErrInvalidDocument = errors.New("invalid svg document")

// Verify reads r to the end and checks that it holds a single well-formed
// XML document whose root is an svg element. It is used to reject cached
// files that were truncated or modified.
func Verify(r io.Reader) error {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		switch {
		case errors.Is(err, io.EOF):
			if roots != 1 || depth != 0 {
				return fmt.Errorf("%w: unexpected end of document", ErrInvalidDocument)
			}
			return nil
		case err != nil:
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if roots++; roots > 1 || t.Name.Local != "svg" {
					return fmt.Errorf("%w: unexpected root <%s>", ErrInvalidDocument, t.Name.Local)
				}
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
}
