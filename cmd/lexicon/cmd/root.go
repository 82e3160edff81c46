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
	"github.com/spf13/cobra"
)

// RootCmd is the base command every subcommand attaches itself to via its
// own init(), following the teacher's cmd/vellum/cmd layout (build.go and
// range.go each call RootCmd.AddCommand in their own init()).
var RootCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "lexicon builds, inspects and queries minimal acyclic DFA word lists",
	Long: `lexicon is a command-line tool for building, persisting and querying
the lexicon package's minimal acyclic deterministic finite automata.`,
}
