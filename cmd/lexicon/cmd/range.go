//  Copyright (c) 2017 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/madfa/lexicon"
	"github.com/madfa/lexicon/cmd/lexicon/cmd/rangeexpr"
	"github.com/spf13/cobra"
)

// rangeCmd iterates over the words of a lexicon file that fall within a
// bracket-notation interval, grounded on the teacher's range.go print loop
// ("%s - %d\n" per hit becomes one word per line here, since a Lexicon
// carries no associated value).
var rangeCmd = &cobra.Command{
	Use:   "range <lexicon.bin> <interval>",
	Short: "Prints the words of a lexicon file within a bracket-notation interval.",
	Long:  `Prints the words of a lexicon file within an interval such as "[aardvark,zebra)". Either bound may be omitted for an unbounded side.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("path and interval are required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := lexicon.Open[rune](args[0])
		if err != nil {
			return err
		}

		expr, err := rangeexpr.Parse(args[1])
		if err != nil {
			return err
		}

		low, high := expr.Bounds()

		// Range's from bound is always inclusive; an exclusive low bound is
		// realised by seeking to from and then dropping an exact match in
		// the printed output below.
		var from, until []rune
		if low != nil {
			from = lexicon.Word(*low)
		}
		if high != nil {
			until = lexicon.Word(*high)
			if expr.HighInclusive() {
				// Range's until bound is always exclusive; an inclusive high
				// bound is realised by appending the smallest possible
				// extension so that the bound word itself still sorts before
				// the cutoff.
				until = append(append([]rune{}, until...), 0)
			}
		}

		sub, err := lex.Range(from, until)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		it := sub.Iterator()
		for {
			w, err := it.Next()
			if err != nil {
				break
			}
			if low != nil && !expr.LowInclusive() && lexicon.WordString(w) == *low {
				continue
			}
			fmt.Fprintln(out, lexicon.WordString(w))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rangeCmd)
}
