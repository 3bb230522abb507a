// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tunabay/go-groovytar/wcag"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the color palette with its contrast ratios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writePalette(cmd.OutOrStdout())
		},
	}
}

func writePalette(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tBACKGROUND\tFOREGROUND\tRATIO\tLEVEL")
	for i, p := range wcag.All() {
		fmt.Fprintf(tw, "%d\t%v\t%v\t%.2f\t%v\n", i, p.Background, p.Foreground, p.Ratio(), p.Level())
	}

	return tw.Flush()
}
