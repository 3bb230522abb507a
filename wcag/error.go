// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package wcag

import "errors"

// ErrInvalidColor is the error thrown when a color string can not be parsed.
var ErrInvalidColor = errors.New("invalid color")

// ErrRandom is the error thrown when the random source could not be read.
var ErrRandom = errors.New("random source failure")
