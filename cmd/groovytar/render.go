// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tunabay/go-groovytar"
	"golang.org/x/term"
)

var errTerminal = errors.New("refusing to write svg to a terminal, use --out or --force")

type renderFlags struct {
	style   string
	size    int
	example bool
	comment bool
	out     string
	force   bool
}

func newRenderCmd() *cobra.Command {
	rf := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render [flags] ID",
		Short: "Render the avatar of an id",
		Long: `Render the avatar of an id and write the SVG document to a file or the
standard output. An id that is not a 32-digit hexadecimal hash is replaced by
its MD5 digest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rf.run(cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().StringVarP(&rf.style, "style", "d", string(groovytar.DefaultStyle), "Avatar style or alias (identicon, mm, ...)")
	cmd.Flags().IntVarP(&rf.size, "size", "s", groovytar.DefaultSize, "Requested CSS pixel size")
	cmd.Flags().BoolVar(&rf.example, "example", false, "Draw a random example instead of the id")
	cmd.Flags().BoolVar(&rf.comment, "comment", false, "Append the generation date comment")
	cmd.Flags().StringVarP(&rf.out, "out", "o", "", "Output file, standard output if empty or -")
	cmd.Flags().BoolVarP(&rf.force, "force", "f", false, "Write to the standard output even if it is a terminal")

	return cmd
}

func (rf *renderFlags) run(stdout io.Writer, id string) error {
	var opts []groovytar.Option
	if rf.example {
		opts = append(opts, groovytar.WithExample(nil))
	}
	if rf.comment {
		opts = append(opts, groovytar.WithComment(nil))
	}
	b, err := groovytar.Render(id, groovytar.ParseStyle(rf.style), rf.size, opts...)
	if err != nil {
		return err
	}

	if rf.out != "" && rf.out != "-" {
		if err := os.WriteFile(rf.out, b, 0o644); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	}
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) && !rf.force {
		return errTerminal
	}
	if _, err := stdout.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}
