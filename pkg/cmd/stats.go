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
	"sort"

	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/passes"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// statsCmd prints operation and call histograms of a circuit or module.
var statsCmd = &cobra.Command{
	Use:   "stats [flags] file",
	Short: "Print operation and call-stack histograms.",
	Long:  "Print, per circuit, how often each operation occurs and how often each callee is called.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if isModuleFile(args[0]) {
			module, err := readModule(args[0]).ReadOnly()
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			operations, err := passes.ModuleOperations(module)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			calls, err := passes.ModuleCallStacks(module)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			for _, name := range module.CircuitNames() {
				fmt.Printf("circuit %s:\n", name)
				printHistogram("operations", operations[name])
				printHistogram("calls", calls[name])
			}
			//
			return
		}
		//
		circuit, err := readCircuit(args[0]).ReadOnly()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Printf("circuit %s:\n", circuit.Name())
		printHistogram("operations", passes.CircuitOperations(circuit))
		printHistogram("calls", passes.CircuitCallStacks(circuit))
	},
}

// depthCmd prints the node count and the maximum node depth of a circuit.
var depthCmd = &cobra.Command{
	Use:   "depth [flags] file",
	Short: "Print the topological depth of a circuit.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		circuit, err := readCircuit(args[0]).ReadOnly()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		var deepest uint64
		for _, d := range passes.NodeDepths(circuit) {
			deepest = max(deepest, d)
		}
		//
		fmt.Printf("circuit %s: %d nodes, depth %d\n", circuit.Name(), circuit.NumNodes(), deepest)
	},
}

func printHistogram(title string, histogram map[string]int) {
	keys := make([]string, 0, len(histogram))
	for key := range histogram {
		keys = append(keys, key)
	}
	//
	sort.Strings(keys)
	//
	for _, key := range keys {
		fmt.Printf("  %s %s: %d\n", title, key, histogram[key])
	}
}

// circuitOrEntry resolves the circuit to analyze: the file itself for .fs
// inputs, the module entry circuit for .mfs inputs.
func circuitOrEntry(filename string) (core.Circuit, error) {
	if isModuleFile(filename) {
		module, err := readModule(filename).ReadOnly()
		if err != nil {
			return nil, err
		}
		//
		return module.EntryCircuit()
	}
	//
	return readCircuit(filename).ReadOnly()
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(depthCmd)
	statsCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
}
