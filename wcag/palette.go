// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package wcag

// pairs is the ordered table of background and foreground combinations. The
// order is part of the image format: an index selects the same pair forever,
// so new entries may only be appended. The last entry repeats an earlier one
// and is kept for that reason.
var pairs = [...]hexPair{
	{"c3155e", "87fffa"},
	{"b1336d", "d1fde2"},
	{"961d07", "b8c5fa"},
	{"98161a", "4bd8e2"},
	{"c44703", "f5f5f5"},
	{"691f4b", "ed9439"},
	{"96305a", "97e0e8"},
	{"8d343a", "a1e35f"},
	{"7b033c", "4fcd8f"},
	{"421225", "eded0f"},
	{"590e2c", "8eb829"},
	{"d89f36", "35355f"},
	{"96381d", "b5f803"},
	{"834458", "8ce800"},
	{"814d04", "84e5a3"},
	{"674410", "b8b7f0"},
	{"6d2a1c", "afa4f4"},
	{"8a310a", "d5f99a"},
	{"6f5006", "f2c57d"},
	{"9a4c4d", "efe880"},
	{"a24320", "a9fc4a"},
	{"202c17", "3aaefc"},
	{"0c3113", "f8a0c9"},
	{"1c2410", "b49183"},
	{"193e19", "eeb8ef"},
	{"5b4429", "d0ece6"},
	{"4b5f0d", "95f24f"},
	{"663838", "c2f65a"},
	{"245e21", "f6f5ed"},
	{"3700e9", "8fe474"},
	{"2303c8", "a4ad58"},
	{"0e10ca", "d3a21f"},
	{"132052", "939689"},
	{"082f4f", "ec4ff8"},
	{"0f0f3d", "c8a12a"},
	{"2733af", "65fdf8"},
	{"103c88", "f3ed69"},
	{"4c4da4", "8efb7f"},
	{"1d3987", "d494f9"},
	{"590d60", "d1ef85"},
	{"640c4d", "6dd8f8"},
	{"861d57", "9fc464"},
	{"8a0261", "f5bdb8"},
	{"751a5b", "d5b67b"},
	{"7b016b", "b8b432"},
	{"39062a", "a36fce"},
	{"0c402e", "fcc373"},
	{"2a4735", "b7a3dc"},
	{"1b5535", "bcfd86"},
	{"453513", "bd91de"},
	{"00505c", "ecaf5f"},
	{"3f2e22", "d8c8b0"},
	{"0c5f3b", "b5dda6"},
	{"025f53", "d4cc82"},
	{"144b5c", "ecbc7b"},
	{"294216", "95bd1e"},
	{"67527a", "8be3c3"},
	{"634f56", "f9c56c"},
	{"85345f", "97d912"},
	{"0c3113", "f8a0c9"},
}
