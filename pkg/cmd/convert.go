// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/encryptogroup/fuse/pkg/backend"
	"github.com/encryptogroup/fuse/pkg/frontend"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// convertCmd imports a Bristol circuit into the native serialized form.
var convertCmd = &cobra.Command{
	Use:   "convert [flags] bristol_file output_file",
	Short: "Convert a Bristol circuit into a serialized circuit file.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		builder, err := frontend.BristolFromFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if err := builder.FinishAndWriteToFile(args[1]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		log.Debugf("converted %s to %s", args[0], args[1])
	},
}

// viewCmd renders a circuit or module as Graphviz DOT on stdout.
var viewCmd = &cobra.Command{
	Use:   "view [flags] file",
	Short: "Render a circuit or module as Graphviz DOT.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if isModuleFile(args[0]) && !GetFlag(cmd, "entry") {
			module, err := readModule(args[0]).ReadOnly()
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			dot, err := backend.ModuleToDot(module)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			fmt.Print(dot)
			//
			return
		}
		//
		circuit, err := circuitOrEntry(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Print(backend.CircuitToDot(circuit))
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(viewCmd)
	convertCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	viewCmd.Flags().Bool("entry", false, "render only the entry circuit of a module")
}
