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
package backend

import (
	"fmt"
	"strings"

	"github.com/encryptogroup/fuse/pkg/core"
)

// CircuitToDot renders a circuit as a Graphviz digraph.  Inputs, outputs and
// constants carry distinguishing colours; edges reading a non-zero output
// offset are labelled with it.
func CircuitToDot(circuit core.Circuit) string {
	var out strings.Builder
	//
	fmt.Fprintf(&out, "digraph \"%s\" {\n", circuit.Name())
	writeDotBody(&out, circuit, "")
	out.WriteString("}\n")
	//
	return out.String()
}

// ModuleToDot renders every circuit of a module as one digraph with a cluster
// per circuit.
func ModuleToDot(module core.Module) (string, error) {
	var out strings.Builder
	//
	out.WriteString("digraph module {\n")
	//
	for i, name := range module.CircuitNames() {
		circuit, err := module.CircuitWithName(name)
		if err != nil {
			return "", err
		}
		//
		fmt.Fprintf(&out, "subgraph \"cluster_%s\" {\n", name)
		fmt.Fprintf(&out, "label=\"%s\";\n", name)
		writeDotBody(&out, circuit, fmt.Sprintf("c%d_", i))
		out.WriteString("}\n")
	}
	//
	out.WriteString("}\n")
	//
	return out.String(), nil
}

func writeDotBody(out *strings.Builder, circuit core.Circuit, prefix string) {
	circuit.Traverse(func(node core.Node) {
		label := fmt.Sprintf("%s [%d]", node.OperationName(), node.ID())
		//
		switch {
		case node.IsInput():
			fmt.Fprintf(out, "%s%d [label=\"%s\",color=green];\n", prefix, node.ID(), label)
		case node.IsOutput():
			fmt.Fprintf(out, "%s%d [label=\"%s\",color=red];\n", prefix, node.ID(), label)
		case node.IsConstant():
			fmt.Fprintf(out, "%s%d [label=\"%s\",color=blue];\n", prefix, node.ID(), label)
		case node.IsSubcircuitCall():
			fmt.Fprintf(out, "%s%d [label=\"%s %s\",shape=box];\n", prefix, node.ID(), label, node.SubcircuitName())
		default:
			fmt.Fprintf(out, "%s%d [label=\"%s\"];\n", prefix, node.ID(), label)
		}
		//
		offsets := node.InputOffsets()
		//
		for i, input := range node.InputIDs() {
			if len(offsets) > 0 && offsets[i] != 0 {
				fmt.Fprintf(out, "%s%d -> %s%d [label=\"%d\"];\n", prefix, input, prefix, node.ID(), offsets[i])
			} else {
				fmt.Fprintf(out, "%s%d -> %s%d;\n", prefix, input, prefix, node.ID())
			}
		}
	})
}
