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
	"bufio"
	"fmt"
	"strings"

	"github.com/madfa/lexicon"
	"github.com/spf13/cobra"
)

// buildCmd is grounded on the teacher's build.go: read records from a
// plain-text source, feed them to a builder-shaped constructor, report how
// many were absorbed. The teacher reads (key, value) CSV rows from a file
// into a vellum.Builder; this reads one word per stdin line into
// lexicon.FromStrings, since a Lexicon has no associated value, only
// membership.
var buildCmd = &cobra.Command{
	Use:   "build <out.bin>",
	Short: "Builds a lexicon file from a newline-delimited word list on stdin.",
	Long:  `Builds a lexicon file from a newline-delimited word list read from stdin. Lines are trimmed and empty lines dropped; words may arrive in any order, build sorts and deduplicates them before constructing the automaton.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("output path required: build <out.bin>")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var words []string
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			words = append(words, line)
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		lex, err := lexicon.FromStrings(words...)
		if err != nil {
			return err
		}

		if err := lex.Save(args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "built %d words into %d states\n", lex.Size(), lex.Length())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)
}
