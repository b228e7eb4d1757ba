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

	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/encryptogroup/fuse/pkg/passes"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// vectorizeCmd fuses data-parallel gates of a circuit into SIMD nodes.
var vectorizeCmd = &cobra.Command{
	Use:   "vectorize [flags] input_file output_file",
	Short: "Fuse same-operation gates into SIMD nodes.",
	Long: "Group gates of one operation by instruction depth and fuse each sufficiently large " +
		"group into a single SIMD node, rewriting the circuit in place.",
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
		var (
			minGates    = int(GetUint(cmd, "min-gates"))
			maxDistance = int(GetUint(cmd, "max-distance"))
			opName      = GetString(cmd, "operation")
		)
		//
		context := readCircuit(args[0])
		//
		circuit, err := context.Mutable()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		var fusedNodes int
		//
		if opName == "" {
			fusedNodes, err = passes.VectorizeAllInstructions(circuit, minGates, maxDistance)
		} else {
			operation, ok := ir.EnumValuesPrimitiveOperation[opName]
			if !ok {
				fmt.Printf("unknown operation \"%s\"\n", opName)
				os.Exit(1)
			}
			//
			fusedNodes, err = passes.VectorizeInstructions(circuit, operation, minGates, maxDistance)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		context.Pack()
		//
		if err := context.WriteToFile(args[1]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Printf("fused %d nodes, %d nodes remain\n", fusedNodes, circuit.NumNodes())
	},
}

func init() {
	rootCmd.AddCommand(vectorizeCmd)
	vectorizeCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	vectorizeCmd.Flags().String("operation", "Xor", "operation to fuse (empty for all)")
	vectorizeCmd.Flags().Uint("min-gates", 8, "minimum group size worth fusing")
	vectorizeCmd.Flags().Uint("max-distance", 2, "maximum node-depth distance from the group median")
}
