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
	"github.com/spf13/cobra"
)

var dotID string

// dotCmd renders a saved lexicon file as Graphviz DOT, grounded on the
// teacher's export_dot.go (ExportBuilderDot) but operating on an opened
// Lexicon rather than a live Builder.
var dotCmd = &cobra.Command{
	Use:   "dot <lexicon.bin>",
	Short: "Renders a lexicon file as Graphviz DOT.",
	Long:  `Renders a lexicon file as Graphviz DOT text, printed to stdout.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("path is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := lexicon.Open[rune](args[0])
		if err != nil {
			return err
		}
		return lexicon.ExportDOT(lex, dotID, cmd.OutOrStdout())
	},
}

func init() {
	dotCmd.Flags().StringVar(&dotID, "id", "lexicon", "digraph id to emit")
	RootCmd.AddCommand(dotCmd)
}
