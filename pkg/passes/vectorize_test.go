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
package passes_test

import (
	"testing"

	"github.com/encryptogroup/fuse/pkg/backend"
	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/frontend"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/encryptogroup/fuse/pkg/passes"
	"github.com/stretchr/testify/require"
)

// buildAdder8 constructs a ripple-carry adder over two UInt8 inputs: both
// inputs are split into bits, full adders combine them, and the sum bits are
// merged back into a UInt8 output.
func buildAdder8(t *testing.T) (data []byte, inA, inB, out uint64) {
	t.Helper()
	//
	cb := frontend.NewCircuitBuilder("add8")
	secU8 := cb.AddDataType(ir.PrimitiveTypeUInt8, ir.SecurityLevelSecure, nil, "")
	plainU8 := cb.AddDataType(ir.PrimitiveTypeUInt8, ir.SecurityLevelPlaintext, nil, "")
	//
	inA, err := cb.AddInputNode(secU8)
	require.NoError(t, err)
	inB, err = cb.AddInputNode(secU8)
	require.NoError(t, err)
	//
	splitA, err := cb.AddSplitNode(inA, secU8)
	require.NoError(t, err)
	splitB, err := cb.AddSplitNode(inB, secU8)
	require.NoError(t, err)
	//
	var (
		carry uint64
		sums  []uint64
	)
	//
	for bit := uint32(0); bit < 8; bit++ {
		half, err := cb.AddGate(ir.PrimitiveOperationXor, []uint64{splitA, splitB}, []uint32{bit, bit})
		require.NoError(t, err)
		//
		halfCarry, err := cb.AddGate(ir.PrimitiveOperationAnd, []uint64{splitA, splitB}, []uint32{bit, bit})
		require.NoError(t, err)
		//
		if bit == 0 {
			sums = append(sums, half)
			carry = halfCarry
			continue
		}
		//
		sum, err := cb.AddGate(ir.PrimitiveOperationXor, []uint64{half, carry}, nil)
		require.NoError(t, err)
		//
		sums = append(sums, sum)
		//
		if bit < 7 {
			overflow, err := cb.AddGate(ir.PrimitiveOperationAnd, []uint64{half, carry}, nil)
			require.NoError(t, err)
			//
			carry, err = cb.AddGate(ir.PrimitiveOperationOr, []uint64{halfCarry, overflow}, nil)
			require.NoError(t, err)
		}
	}
	//
	merged, err := cb.AddNode(frontend.NodeSpec{
		Operation:   ir.PrimitiveOperationMerge,
		InputIDs:    sums,
		NumOutputs:  1,
		OutputTypes: []uint{secU8},
	})
	require.NoError(t, err)
	//
	out, err = cb.AddOutputNode(plainU8, []uint64{merged}, nil)
	require.NoError(t, err)
	//
	data, err = cb.Finish()
	require.NoError(t, err)
	//
	return data, inA, inB, out
}

// addOracle evaluates the adder on a pair of bytes.
func addOracle(t *testing.T, circuit core.Circuit, inA, inB, out uint64, a, b uint8) uint8 {
	t.Helper()
	//
	env := backend.Environment{inA: {a}, inB: {b}}
	require.NoError(t, backend.EvaluateCircuit(circuit, env))
	//
	return env[out][0].(uint8)
}

func TestAdderBaseline(t *testing.T) {
	data, inA, inB, out := buildAdder8(t)
	//
	context, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	//
	view, err := context.ReadOnly()
	require.NoError(t, err)
	//
	require.Equal(t, uint8(0), addOracle(t, view, inA, inB, out, 0, 0))
	require.Equal(t, uint8(0), addOracle(t, view, inA, inB, out, 255, 1))
	require.Equal(t, uint8(30), addOracle(t, view, inA, inB, out, 15, 15))
	require.Equal(t, uint8(77), addOracle(t, view, inA, inB, out, 33, 44))
}

func TestVectorizeAdderXors(t *testing.T) {
	data, inA, inB, out := buildAdder8(t)
	//
	context, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	//
	circuit, err := context.Mutable()
	require.NoError(t, err)
	//
	before := circuit.NumNodes()
	// the eight first-level xors share instruction depth one
	fusedNodes, err := passes.VectorizeInstructions(circuit, ir.PrimitiveOperationXor, 4, 16)
	require.NoError(t, err)
	require.GreaterOrEqual(t, fusedNodes, 8)
	require.Less(t, circuit.NumNodes(), before)
	require.NoError(t, circuit.CheckTopologicalOrder())
	// a fused node produces one output per fused gate
	var simdOutputs uint
	//
	circuit.Traverse(func(node core.Node) {
		if node.Operation() == ir.PrimitiveOperationXor && node.NumOutputs() > 1 {
			require.Equal(t, node.NumInputs()/2, node.NumOutputs())
			simdOutputs += node.NumOutputs()
		}
	})
	//
	require.GreaterOrEqual(t, int(simdOutputs), 8)
	// the adder still adds, overflow wraps
	require.Equal(t, uint8(0), addOracle(t, circuit, inA, inB, out, 0, 0))
	require.Equal(t, uint8(0), addOracle(t, circuit, inA, inB, out, 255, 1))
	require.Equal(t, uint8(30), addOracle(t, circuit, inA, inB, out, 15, 15))
	// the circuit survives a pack round-trip after the rewrite
	context.Pack()
	//
	view, err := context.BufferView()
	require.NoError(t, err)
	require.Equal(t, uint8(77), addOracle(t, view, inA, inB, out, 33, 44))
}

func TestCallStackHistogram(t *testing.T) {
	mb := frontend.NewModuleBuilder()
	//
	callee := mb.AddCircuit("leaf")
	sec := callee.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	leafIn, err := callee.AddInputNode(sec)
	require.NoError(t, err)
	//
	_, err = callee.AddOutputNode(sec, []uint64{leafIn}, nil)
	require.NoError(t, err)
	//
	main := mb.MainCircuit()
	mainSec := main.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in, err := main.AddInputNode(mainSec)
	require.NoError(t, err)
	//
	call1, err := main.AddCallToSubcircuitNode([]uint64{in}, nil, "leaf", 1)
	require.NoError(t, err)
	//
	call2, err := main.AddCallToSubcircuitNode([]uint64{call1}, nil, "leaf", 1)
	require.NoError(t, err)
	//
	_, err = main.AddOutputNode(mainSec, []uint64{call2}, nil)
	require.NoError(t, err)
	//
	data, err := mb.Finish()
	require.NoError(t, err)
	//
	context, err := core.NewModuleContext(data)
	require.NoError(t, err)
	//
	module, err := context.ReadOnly()
	require.NoError(t, err)
	//
	calls, err := passes.ModuleCallStacks(module)
	require.NoError(t, err)
	require.Equal(t, 2, calls["main"]["leaf"])
	require.Empty(t, calls["leaf"])
}
