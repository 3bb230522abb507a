// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package param

import "errors"

// ErrRandom is the error thrown when the random source could not be read.
var ErrRandom = errors.New("random source failure")
