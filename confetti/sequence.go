// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package confetti

// sequences holds the drawing order of the shapes for each order digit.
// Every image drawn so far depends on these values; do not edit them.
var sequences = [16][32]Step{
	// '0'
	{
		{Polygon, 50, 7}, {Triangle, 110, 14}, {Circle, 40, 13}, {Diamond, 40, 1},
		{Diamond, 30, 11}, {Triangle, 90, 9}, {Diamond, 70, 8}, {Circle, 90, 2},
		{Circle, 70, 4}, {Diamond, 65, 15}, {Polygon, 42, 10}, {Circle, 110, 6},
		{Polygon, 30, 5}, {Polygon, 66, 12}, {Triangle, 120, 0}, {Triangle, 140, 3},
		{Polygon, 42, 8}, {Polygon, 50, 15}, {Circle, 40, 7}, {Circle, 90, 6},
		{Diamond, 40, 1}, {Circle, 70, 4}, {Diamond, 65, 10}, {Polygon, 66, 13},
		{Triangle, 120, 3}, {Diamond, 70, 14}, {Triangle, 90, 9}, {Triangle, 140, 12},
		{Diamond, 30, 0}, {Triangle, 110, 11}, {Circle, 110, 2}, {Polygon, 30, 5},
	},
	// '1'
	{
		{Circle, 90, 4}, {Polygon, 42, 1}, {Diamond, 40, 15}, {Triangle, 140, 8},
		{Polygon, 30, 5}, {Diamond, 30, 11}, {Triangle, 110, 3}, {Circle, 40, 14},
		{Triangle, 90, 12}, {Circle, 110, 13}, {Diamond, 70, 7}, {Circle, 70, 6},
		{Diamond, 65, 0}, {Polygon, 66, 9}, {Triangle, 120, 10}, {Polygon, 50, 2},
		{Circle, 110, 0}, {Circle, 40, 1}, {Triangle, 120, 5}, {Diamond, 40, 12},
		{Triangle, 140, 6}, {Diamond, 65, 3}, {Circle, 70, 11}, {Circle, 90, 14},
		{Polygon, 66, 2}, {Diamond, 70, 7}, {Triangle, 90, 8}, {Triangle, 110, 9},
		{Polygon, 30, 10}, {Polygon, 42, 15}, {Diamond, 30, 4}, {Polygon, 50, 13},
	},
	// '2'
	{
		{Diamond, 40, 15}, {Diamond, 65, 1}, {Triangle, 140, 7}, {Circle, 70, 4},
		{Triangle, 90, 8}, {Triangle, 110, 3}, {Diamond, 30, 9}, {Polygon, 50, 12},
		{Circle, 110, 10}, {Polygon, 30, 0}, {Circle, 90, 11}, {Triangle, 120, 5},
		{Circle, 40, 13}, {Polygon, 42, 14}, {Diamond, 70, 6}, {Polygon, 66, 2},
		{Diamond, 30, 1}, {Circle, 90, 12}, {Polygon, 50, 4}, {Circle, 110, 6},
		{Diamond, 70, 0}, {Triangle, 140, 2}, {Circle, 70, 9}, {Polygon, 42, 8},
		{Polygon, 30, 15}, {Diamond, 40, 14}, {Diamond, 65, 3}, {Triangle, 120, 7},
		{Circle, 40, 13}, {Polygon, 66, 5}, {Triangle, 90, 11}, {Triangle, 110, 10},
	},
	// '3'
	{
		{Circle, 70, 15}, {Diamond, 40, 14}, {Circle, 110, 3}, {Triangle, 110, 0},
		{Triangle, 120, 1}, {Polygon, 42, 4}, {Diamond, 65, 12}, {Circle, 90, 9},
		{Polygon, 50, 7}, {Circle, 40, 2}, {Polygon, 30, 13}, {Diamond, 30, 6},
		{Triangle, 140, 8}, {Diamond, 70, 10}, {Polygon, 66, 5}, {Triangle, 90, 11},
		{Circle, 90, 4}, {Polygon, 30, 3}, {Circle, 110, 2}, {Diamond, 70, 10},
		{Circle, 70, 7}, {Triangle, 90, 8}, {Polygon, 50, 1}, {Circle, 40, 12},
		{Diamond, 65, 9}, {Triangle, 110, 13}, {Diamond, 40, 6}, {Diamond, 30, 11},
		{Triangle, 120, 5}, {Polygon, 66, 14}, {Polygon, 42, 0}, {Triangle, 140, 15},
	},
	// '4'
	{
		{Circle, 40, 11}, {Diamond, 65, 1}, {Polygon, 42, 6}, {Polygon, 50, 10},
		{Diamond, 30, 9}, {Diamond, 70, 0}, {Triangle, 90, 5}, {Triangle, 120, 3},
		{Circle, 70, 4}, {Triangle, 110, 7}, {Triangle, 140, 2}, {Circle, 110, 14},
		{Diamond, 40, 12}, {Polygon, 30, 8}, {Circle, 90, 15}, {Polygon, 66, 13},
		{Circle, 70, 5}, {Triangle, 90, 1}, {Polygon, 30, 2}, {Triangle, 110, 10},
		{Triangle, 140, 6}, {Circle, 110, 12}, {Diamond, 30, 0}, {Polygon, 42, 11},
		{Polygon, 66, 13}, {Diamond, 40, 7}, {Diamond, 65, 3}, {Diamond, 70, 4},
		{Circle, 40, 15}, {Circle, 90, 8}, {Triangle, 120, 14}, {Polygon, 50, 9},
	},
	// '5'
	{
		{Circle, 90, 9}, {Triangle, 120, 7}, {Diamond, 30, 6}, {Diamond, 65, 13},
		{Circle, 40, 5}, {Polygon, 66, 8}, {Diamond, 70, 15}, {Triangle, 140, 10},
		{Triangle, 90, 1}, {Triangle, 110, 3}, {Diamond, 40, 14}, {Polygon, 42, 0},
		{Polygon, 30, 2}, {Circle, 70, 12}, {Polygon, 50, 4}, {Circle, 110, 11},
		{Diamond, 65, 5}, {Triangle, 140, 11}, {Triangle, 120, 0}, {Circle, 90, 9},
		{Triangle, 90, 1}, {Diamond, 30, 3}, {Triangle, 110, 10}, {Circle, 40, 13},
		{Polygon, 30, 4}, {Polygon, 66, 6}, {Circle, 110, 15}, {Diamond, 70, 2},
		{Circle, 70, 7}, {Diamond, 40, 14}, {Polygon, 42, 12}, {Polygon, 50, 8},
	},
	// '6'
	{
		{Circle, 70, 12}, {Polygon, 42, 8}, {Circle, 40, 6}, {Circle, 110, 0},
		{Circle, 90, 9}, {Polygon, 50, 7}, {Diamond, 70, 10}, {Polygon, 30, 1},
		{Diamond, 30, 2}, {Triangle, 110, 13}, {Diamond, 65, 11}, {Triangle, 90, 3},
		{Triangle, 140, 4}, {Polygon, 66, 14}, {Triangle, 120, 15}, {Diamond, 40, 5},
		{Polygon, 30, 4}, {Circle, 40, 0}, {Circle, 70, 5}, {Diamond, 40, 3},
		{Triangle, 90, 1}, {Diamond, 70, 15}, {Polygon, 42, 12}, {Circle, 90, 9},
		{Triangle, 120, 10}, {Diamond, 65, 8}, {Triangle, 110, 11}, {Circle, 110, 2},
		{Polygon, 66, 14}, {Polygon, 50, 6}, {Diamond, 30, 13}, {Triangle, 140, 7},
	},
	// '7'
	{
		{Diamond, 40, 14}, {Circle, 90, 15}, {Polygon, 50, 5}, {Diamond, 30, 13},
		{Polygon, 42, 6}, {Triangle, 110, 7}, {Diamond, 65, 2}, {Triangle, 140, 9},
		{Circle, 70, 1}, {Triangle, 90, 4}, {Diamond, 70, 8}, {Circle, 110, 11},
		{Triangle, 120, 0}, {Polygon, 66, 12}, {Circle, 40, 3}, {Polygon, 30, 10},
		{Circle, 70, 11}, {Triangle, 140, 6}, {Polygon, 30, 1}, {Diamond, 65, 12},
		{Diamond, 40, 8}, {Triangle, 110, 2}, {Polygon, 42, 14}, {Circle, 40, 13},
		{Circle, 90, 5}, {Diamond, 30, 15}, {Diamond, 70, 10}, {Polygon, 66, 3},
		{Triangle, 120, 4}, {Polygon, 50, 0}, {Triangle, 90, 9}, {Circle, 110, 7},
	},
	// '8'
	{
		{Polygon, 66, 0}, {Circle, 40, 2}, {Circle, 90, 6}, {Polygon, 30, 13},
		{Diamond, 65, 12}, {Circle, 110, 10}, {Circle, 70, 7}, {Diamond, 40, 5},
		{Polygon, 42, 1}, {Triangle, 120, 8}, {Triangle, 90, 14}, {Polygon, 50, 4},
		{Diamond, 30, 9}, {Triangle, 110, 15}, {Triangle, 140, 11}, {Diamond, 70, 3},
		{Triangle, 110, 11}, {Circle, 90, 7}, {Circle, 110, 9}, {Triangle, 140, 12},
		{Circle, 40, 6}, {Diamond, 30, 4}, {Diamond, 65, 14}, {Polygon, 42, 5},
		{Polygon, 50, 3}, {Polygon, 30, 2}, {Diamond, 70, 0}, {Polygon, 66, 15},
		{Circle, 70, 13}, {Triangle, 120, 1}, {Diamond, 40, 8}, {Triangle, 90, 10},
	},
	// '9'
	{
		{Triangle, 110, 5}, {Diamond, 30, 10}, {Polygon, 50, 11}, {Circle, 90, 7},
		{Polygon, 42, 3}, {Circle, 70, 2}, {Polygon, 66, 0}, {Circle, 40, 1},
		{Triangle, 90, 8}, {Diamond, 40, 13}, {Diamond, 65, 6}, {Circle, 110, 14},
		{Triangle, 120, 12}, {Diamond, 70, 4}, {Triangle, 140, 9}, {Polygon, 30, 15},
		{Triangle, 120, 12}, {Polygon, 30, 15}, {Diamond, 40, 5}, {Circle, 40, 0},
		{Diamond, 70, 2}, {Polygon, 50, 3}, {Circle, 70, 6}, {Triangle, 140, 10},
		{Circle, 110, 9}, {Triangle, 90, 4}, {Polygon, 66, 14}, {Circle, 90, 7},
		{Diamond, 65, 13}, {Polygon, 42, 11}, {Diamond, 30, 8}, {Triangle, 110, 1},
	},
	// 'a'
	{
		{Polygon, 30, 1}, {Triangle, 120, 8}, {Polygon, 42, 13}, {Diamond, 30, 7},
		{Circle, 40, 10}, {Triangle, 140, 9}, {Circle, 90, 12}, {Circle, 110, 6},
		{Triangle, 90, 15}, {Polygon, 50, 2}, {Diamond, 70, 14}, {Polygon, 66, 3},
		{Diamond, 65, 5}, {Diamond, 40, 11}, {Circle, 70, 4}, {Triangle, 110, 0},
		{Polygon, 42, 0}, {Diamond, 70, 15}, {Polygon, 50, 1}, {Circle, 110, 12},
		{Triangle, 90, 11}, {Circle, 40, 2}, {Triangle, 120, 9}, {Triangle, 110, 8},
		{Circle, 90, 14}, {Diamond, 65, 4}, {Triangle, 140, 5}, {Polygon, 30, 13},
		{Polygon, 66, 10}, {Diamond, 30, 3}, {Circle, 70, 6}, {Diamond, 40, 7},
	},
	// 'b'
	{
		{Triangle, 90, 6}, {Triangle, 140, 4}, {Diamond, 70, 15}, {Diamond, 30, 3},
		{Polygon, 30, 0}, {Triangle, 120, 5}, {Polygon, 66, 2}, {Polygon, 42, 10},
		{Diamond, 40, 9}, {Circle, 70, 1}, {Circle, 90, 8}, {Polygon, 50, 12},
		{Triangle, 110, 14}, {Circle, 110, 7}, {Circle, 40, 13}, {Diamond, 65, 11},
		{Polygon, 50, 8}, {Circle, 40, 7}, {Diamond, 30, 1}, {Polygon, 42, 14},
		{Diamond, 40, 4}, {Triangle, 110, 6}, {Triangle, 120, 12}, {Diamond, 70, 0},
		{Circle, 90, 9}, {Triangle, 140, 3}, {Circle, 110, 2}, {Polygon, 66, 13},
		{Diamond, 65, 10}, {Polygon, 30, 11}, {Circle, 70, 15}, {Triangle, 90, 5},
	},
	// 'c'
	{
		{Triangle, 120, 8}, {Circle, 110, 6}, {Diamond, 70, 14}, {Polygon, 42, 1},
		{Triangle, 140, 0}, {Polygon, 66, 4}, {Diamond, 40, 13}, {Diamond, 30, 12},
		{Circle, 90, 15}, {Diamond, 65, 9}, {Triangle, 110, 2}, {Polygon, 30, 10},
		{Triangle, 90, 11}, {Polygon, 50, 5}, {Circle, 40, 7}, {Circle, 70, 3},
		{Triangle, 90, 2}, {Polygon, 66, 10}, {Triangle, 140, 1}, {Triangle, 110, 15},
		{Diamond, 30, 11}, {Polygon, 30, 3}, {Triangle, 120, 7}, {Diamond, 65, 5},
		{Circle, 110, 9}, {Polygon, 42, 4}, {Circle, 90, 0}, {Diamond, 70, 8},
		{Diamond, 40, 13}, {Circle, 70, 6}, {Circle, 40, 14}, {Polygon, 50, 12},
	},
	// 'd'
	{
		{Diamond, 40, 5}, {Diamond, 70, 7}, {Triangle, 90, 3}, {Polygon, 42, 2},
		{Circle, 40, 12}, {Polygon, 30, 4}, {Circle, 110, 0}, {Diamond, 65, 8},
		{Diamond, 30, 14}, {Circle, 90, 1}, {Polygon, 66, 10}, {Circle, 70, 13},
		{Triangle, 110, 9}, {Triangle, 140, 15}, {Polygon, 50, 6}, {Triangle, 120, 11},
		{Polygon, 30, 6}, {Circle, 90, 4}, {Triangle, 90, 14}, {Diamond, 65, 9},
		{Triangle, 140, 13}, {Circle, 110, 3}, {Diamond, 40, 2}, {Diamond, 30, 1},
		{Polygon, 50, 5}, {Polygon, 66, 15}, {Circle, 40, 11}, {Diamond, 70, 7},
		{Triangle, 110, 0}, {Polygon, 42, 8}, {Triangle, 120, 10}, {Circle, 70, 12},
	},
	// 'e'
	{
		{Diamond, 65, 8}, {Triangle, 110, 4}, {Circle, 40, 3}, {Diamond, 30, 7},
		{Circle, 110, 13}, {Triangle, 140, 10}, {Polygon, 30, 14}, {Triangle, 90, 2},
		{Diamond, 70, 12}, {Polygon, 50, 5}, {Triangle, 120, 1}, {Diamond, 40, 11},
		{Circle, 90, 6}, {Polygon, 42, 15}, {Polygon, 66, 9}, {Circle, 70, 0},
		{Circle, 70, 0}, {Triangle, 140, 5}, {Triangle, 90, 1}, {Polygon, 50, 2},
		{Polygon, 66, 3}, {Diamond, 65, 6}, {Circle, 90, 11}, {Diamond, 40, 4},
		{Diamond, 70, 10}, {Diamond, 30, 8}, {Triangle, 110, 9}, {Triangle, 120, 12},
		{Circle, 40, 7}, {Polygon, 30, 13}, {Polygon, 42, 14}, {Circle, 110, 15},
	},
	// any other digit
	{
		{Circle, 40, 9}, {Triangle, 140, 10}, {Circle, 70, 11}, {Circle, 110, 14},
		{Diamond, 70, 8}, {Triangle, 110, 1}, {Polygon, 30, 5}, {Polygon, 50, 12},
		{Diamond, 65, 6}, {Polygon, 66, 3}, {Diamond, 30, 0}, {Triangle, 90, 2},
		{Circle, 90, 4}, {Diamond, 40, 15}, {Polygon, 42, 7}, {Triangle, 120, 13},
		{Circle, 70, 10}, {Polygon, 42, 0}, {Triangle, 140, 4}, {Triangle, 110, 5},
		{Polygon, 66, 12}, {Triangle, 90, 11}, {Diamond, 30, 1}, {Diamond, 65, 7},
		{Circle, 40, 6}, {Diamond, 40, 3}, {Triangle, 120, 9}, {Polygon, 50, 13},
		{Circle, 110, 2}, {Diamond, 70, 15}, {Polygon, 30, 14}, {Circle, 90, 8},
	},
}
