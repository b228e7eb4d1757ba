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
package passes

import (
	"fmt"

	"github.com/encryptogroup/fuse/pkg/core"
)

// ModuleCallGraph extracts the circuit-level call graph of a module: for
// every circuit name, the names of the circuits it calls (with duplicates).
func ModuleCallGraph(module core.Module) (map[string][]string, error) {
	graph := make(map[string][]string)
	//
	for _, name := range module.CircuitNames() {
		circuit, err := module.CircuitWithName(name)
		if err != nil {
			return nil, err
		}
		//
		var targets []string
		//
		circuit.Traverse(func(node core.Node) {
			if node.IsSubcircuitCall() {
				targets = append(targets, node.SubcircuitName())
			}
		})
		//
		graph[name] = targets
	}
	//
	return graph, nil
}

// CheckCallGraphAcyclic verifies that a name-to-callees graph contains no
// cycle (direct or transitive), failing with ErrCycleIntroduced otherwise.
func CheckCallGraphAcyclic(callGraph map[string][]string) error {
	const (
		unvisited = iota
		active
		done
	)
	//
	state := make(map[string]int, len(callGraph))
	//
	var visit func(name string) error
	//
	visit = func(name string) error {
		switch state[name] {
		case active:
			return fmt.Errorf("call graph cycle through %s: %w", name, core.ErrCycleIntroduced)
		case done:
			return nil
		}
		//
		state[name] = active
		//
		for _, target := range callGraph[name] {
			if err := visit(target); err != nil {
				return err
			}
		}
		//
		state[name] = done
		//
		return nil
	}
	//
	for name := range callGraph {
		if err := visit(name); err != nil {
			return err
		}
	}
	//
	return nil
}
