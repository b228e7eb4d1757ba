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
package file

import (
	"fmt"
	"os"
	"path"
)

// CircuitExtension is the conventional extension for serialized circuits.
// Decoders do not depend on it.
const CircuitExtension = ".fs"

// ModuleExtension is the conventional extension for serialized modules.
const ModuleExtension = ".mfs"

// HasCircuitExtension checks whether a filename follows the circuit naming
// convention.
func HasCircuitExtension(filename string) bool {
	return path.Ext(filename) == CircuitExtension
}

// HasModuleExtension checks whether a filename follows the module naming
// convention.
func HasModuleExtension(filename string) bool {
	return path.Ext(filename) == ModuleExtension
}

// ReadBytes reads the entire contents of a serialized circuit or module file.
func ReadBytes(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	//
	return data, nil
}

// WriteBytes writes a serialized circuit or module to a file, truncating any
// previous contents.
func WriteBytes(filename string, data []byte) error {
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	//
	return nil
}
