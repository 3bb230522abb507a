// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package groovytar

import "errors"

// ErrRender is returned when an avatar could not be rendered. Pure rendering
// never fails, only the random source of the example mode can.
var ErrRender = errors.New("render failure")
