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

// Package generator produces synthetic modules for benchmarks and round-trip
// testing, most notably modules chaining many calls to one base circuit
// through its chaining state (the shape of iterated hash compression).
package generator

import (
	"fmt"

	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/frontend"
	"github.com/encryptogroup/fuse/pkg/ir"
)

// ChainedCallModule builds a module whose entry circuit feeds a base circuit
// its own output back as chaining state, calls times in a row.  The base
// circuit (attached as an already-serialized buffer) takes B+S boolean inputs
// and produces S boolean outputs; the entry circuit declares B buffer inputs
// and S initial-state inputs, chains the calls, and outputs the final state.
// For a SHA-512 compression circuit, B is 1024 and S is 512.
func ChainedCallModule(baseCircuit []byte, calls uint) (*core.ModuleContext, error) {
	if calls == 0 {
		return nil, fmt.Errorf("chained module with zero calls: %w", core.ErrInconsistentRewrite)
	}
	//
	base, err := core.NewCircuitBufferViewFromBytes(baseCircuit)
	if err != nil {
		return nil, err
	}
	//
	stateWidth := base.NumOutputs()
	if base.NumInputs() <= stateWidth {
		return nil, fmt.Errorf("base circuit %s takes %d inputs but chains %d state bits: %w",
			base.Name(), base.NumInputs(), stateWidth, core.ErrInconsistentRewrite)
	}
	//
	bufferWidth := base.NumInputs() - stateWidth
	//
	mb := frontend.NewModuleBuilder()
	if err := mb.AddSerializedCircuit(baseCircuit); err != nil {
		return nil, err
	}
	//
	entry := mb.MainCircuit()
	//
	secureBool := entry.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	plainBool := entry.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelPlaintext, nil, "")
	//
	buffer := make([]uint64, bufferWidth)
	for i := range buffer {
		if buffer[i], err = entry.AddInputNode(secureBool, "party: 1"); err != nil {
			return nil, err
		}
	}
	//
	state := make([]uint64, stateWidth)
	stateOffsets := make([]uint32, stateWidth)
	for i := range state {
		if state[i], err = entry.AddInputNode(secureBool, "party: 2"); err != nil {
			return nil, err
		}
	}
	//
	var current uint64
	//
	for call := uint(0); call < calls; call++ {
		inputs := make([]uint64, 0, bufferWidth+stateWidth)
		inputs = append(inputs, buffer...)
		inputs = append(inputs, state...)
		//
		offsets := make([]uint32, 0, bufferWidth+stateWidth)
		offsets = append(offsets, make([]uint32, bufferWidth)...)
		offsets = append(offsets, stateOffsets...)
		//
		current, err = entry.AddCallToSubcircuitNode(inputs, offsets, base.Name(), uint32(stateWidth))
		if err != nil {
			return nil, err
		}
		// The next call chains through the outputs of this one.
		for i := range state {
			state[i] = current
			stateOffsets[i] = uint32(i)
		}
	}
	//
	for i := uint(0); i < stateWidth; i++ {
		if _, err := entry.AddOutputNode(plainBool, []uint64{current}, []uint32{uint32(i)}); err != nil {
			return nil, err
		}
	}
	//
	data, err := mb.Finish()
	if err != nil {
		return nil, err
	}
	//
	return core.NewModuleContext(data)
}
