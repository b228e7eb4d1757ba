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
	"github.com/encryptogroup/fuse/pkg/core"
)

// CircuitOperations computes a histogram of operation name to occurrence
// count over the nodes of one circuit.
func CircuitOperations(circuit core.Circuit) map[string]int {
	histogram := make(map[string]int)
	//
	circuit.Traverse(func(node core.Node) {
		histogram[node.OperationName()]++
	})
	//
	return histogram
}

// ModuleOperations lifts CircuitOperations over every circuit of a module,
// keyed by circuit name.
func ModuleOperations(module core.Module) (map[string]map[string]int, error) {
	result := make(map[string]map[string]int)
	//
	for _, name := range module.CircuitNames() {
		circuit, err := module.CircuitWithName(name)
		if err != nil {
			return nil, err
		}
		//
		result[name] = CircuitOperations(circuit)
	}
	//
	return result, nil
}
