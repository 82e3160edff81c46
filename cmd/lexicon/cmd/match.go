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

	"github.com/madfa/lexicon"
	"github.com/spf13/cobra"
)

// matchCmd scans lines of text read from stdin for the longest member word
// starting at each position, in the style of the teacher's range.go print
// loop (one line per hit), but driven by Lexicon.IndexOf's
// Scanning/Matched/Halted walk instead of an FST Iterator.
var matchCmd = &cobra.Command{
	Use:   "match <lexicon.bin>",
	Short: "Scans stdin text for the longest member word starting at each position.",
	Long:  `Scans each line of stdin for the longest member word of the lexicon starting at each position, printing one "offset: word" line per hit.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("lexicon path required: match <lexicon.bin>")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := lexicon.Open[rune](args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			input := lexicon.Word(scanner.Text())
			for start := 0; start < len(input); start++ {
				if match, ok := lex.Lookup(input, start); ok {
					fmt.Fprintf(out, "%d: %s\n", start, lexicon.WordString(match))
				}
			}
		}
		return scanner.Err()
	},
}

func init() {
	RootCmd.AddCommand(matchCmd)
}
