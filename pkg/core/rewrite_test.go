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
package core_test

import (
	"testing"

	"github.com/encryptogroup/fuse/pkg/backend"
	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/frontend"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/stretchr/testify/require"
)

// twoAndDeepModule builds a module whose entry circuit chains two And gates
// (and1 = a & b, and2 = and1 & b) and whose circuit "and2" computes the same
// function over two inputs.  Returns the module context plus the interesting
// node ids of the entry circuit and of the subcircuit.
type twoAndDeep struct {
	context *core.ModuleContext
	// entry circuit nodes
	a, b, and1, and2, out uint64
	// subcircuit nodes
	subIn1, subIn2, subOut uint64
}

func buildTwoAndDeep(t *testing.T) *twoAndDeep {
	t.Helper()
	//
	var (
		d   twoAndDeep
		err error
		mb  = frontend.NewModuleBuilder()
	)
	// the replacement subcircuit: (x & y) & y
	sub := mb.AddCircuit("and2")
	subSec := sub.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	d.subIn1, err = sub.AddInputNode(subSec)
	require.NoError(t, err)
	d.subIn2, err = sub.AddInputNode(subSec)
	require.NoError(t, err)
	//
	first, err := sub.AddGate(ir.PrimitiveOperationAnd, []uint64{d.subIn1, d.subIn2}, nil)
	require.NoError(t, err)
	//
	second, err := sub.AddGate(ir.PrimitiveOperationAnd, []uint64{first, d.subIn2}, nil)
	require.NoError(t, err)
	//
	d.subOut, err = sub.AddOutputNode(subSec, []uint64{second}, nil)
	require.NoError(t, err)
	// the entry circuit containing the matched subgraph
	main := mb.AddCircuit("main")
	sec := main.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	plain := main.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelPlaintext, nil, "")
	//
	d.a, err = main.AddInputNode(sec)
	require.NoError(t, err)
	d.b, err = main.AddInputNode(sec)
	require.NoError(t, err)
	//
	d.and1, err = main.AddGate(ir.PrimitiveOperationAnd, []uint64{d.a, d.b}, nil)
	require.NoError(t, err)
	//
	d.and2, err = main.AddGate(ir.PrimitiveOperationAnd, []uint64{d.and1, d.b}, nil)
	require.NoError(t, err)
	//
	d.out, err = main.AddOutputNode(plain, []uint64{d.and2}, nil)
	require.NoError(t, err)
	//
	mb.SetEntryCircuitName("main")
	//
	data, err := mb.Finish()
	require.NoError(t, err)
	//
	d.context, err = core.NewModuleContext(data)
	require.NoError(t, err)
	//
	return &d
}

func TestReplaceNodesBySubcircuit(t *testing.T) {
	d := buildTwoAndDeep(t)
	//
	oracle, err := d.context.CreateCopy()
	require.NoError(t, err)
	//
	module, err := d.context.Mutable()
	require.NoError(t, err)
	//
	main, err := module.MutableCircuitWithName("main")
	require.NoError(t, err)
	//
	subcircuit, err := module.CircuitWithName("and2")
	require.NoError(t, err)
	//
	callID, err := main.ReplaceNodesBySubcircuit(
		subcircuit,
		[]uint64{d.and1, d.and2},
		map[uint64]uint64{d.subIn1: d.a, d.subIn2: d.b},
		map[uint64][]uint64{d.subOut: {d.out}},
		map[uint64]uint64{d.subOut: d.and2},
	)
	require.NoError(t, err)
	require.NoError(t, main.CheckTopologicalOrder())
	// exactly one call node, and the replaced gates are gone
	var calls int
	//
	main.Traverse(func(node core.Node) {
		if node.IsSubcircuitCall() {
			calls++
			require.Equal(t, callID, node.ID())
			require.Equal(t, "and2", node.SubcircuitName())
			require.Equal(t, []uint64{d.a, d.b}, node.InputIDs())
			require.Equal(t, uint(1), node.NumOutputs())
		}
		//
		require.NotContains(t, []uint64{d.and1, d.and2}, node.ID())
	})
	//
	require.Equal(t, 1, calls)
	// the subcircuit itself has two inputs and one output
	require.Equal(t, uint(2), subcircuit.NumInputs())
	require.Equal(t, uint(1), subcircuit.NumOutputs())
	// the oracle agrees on all four input combinations
	oracleModule, err := oracle.ReadOnly()
	require.NoError(t, err)
	//
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			expected := backend.Environment{d.a: {a}, d.b: {b}}
			require.NoError(t, backend.EvaluateModule(oracleModule, expected))
			//
			actual := backend.Environment{d.a: {a}, d.b: {b}}
			require.NoError(t, backend.EvaluateModule(module, actual))
			//
			require.Equal(t, expected[d.out][0], actual[d.out][0], "inputs (%v,%v)", a, b)
		}
	}
}

func TestReplaceNodesBySubcircuitValidation(t *testing.T) {
	d := buildTwoAndDeep(t)
	//
	module, err := d.context.Mutable()
	require.NoError(t, err)
	//
	main, err := module.MutableCircuitWithName("main")
	require.NoError(t, err)
	//
	subcircuit, err := module.CircuitWithName("and2")
	require.NoError(t, err)
	// a replaced node which the subcircuit does not cover
	_, err = main.ReplaceNodesBySubcircuit(
		subcircuit,
		[]uint64{d.and1, d.and2, d.b},
		map[uint64]uint64{d.subIn1: d.a, d.subIn2: d.b},
		map[uint64][]uint64{d.subOut: {d.out}},
		map[uint64]uint64{d.subOut: d.and2},
	)
	require.ErrorIs(t, err, core.ErrInconsistentRewrite)
	// a missing producer
	_, err = main.ReplaceNodesBySubcircuit(
		subcircuit,
		[]uint64{d.and1, d.and2},
		map[uint64]uint64{d.subIn1: 999, d.subIn2: d.b},
		map[uint64][]uint64{d.subOut: {d.out}},
		map[uint64]uint64{d.subOut: d.and2},
	)
	require.ErrorIs(t, err, core.ErrNotFound)
	// an output with no declared producer
	_, err = main.ReplaceNodesBySubcircuit(
		subcircuit,
		[]uint64{d.and1, d.and2},
		map[uint64]uint64{d.subIn1: d.a, d.subIn2: d.b},
		map[uint64][]uint64{d.subOut: {d.out}},
		map[uint64]uint64{},
	)
	require.ErrorIs(t, err, core.ErrInconsistentRewrite)
}

func TestReplaceNodesBySIMDNode(t *testing.T) {
	cb := frontend.NewCircuitBuilder("parallel_xor")
	sec := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	plain := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelPlaintext, nil, "")
	//
	var (
		inputs [4]uint64
		err    error
	)
	//
	for i := range inputs {
		inputs[i], err = cb.AddInputNode(sec)
		require.NoError(t, err)
	}
	//
	xor1, err := cb.AddGate(ir.PrimitiveOperationXor, []uint64{inputs[0], inputs[1]}, nil)
	require.NoError(t, err)
	xor2, err := cb.AddGate(ir.PrimitiveOperationXor, []uint64{inputs[2], inputs[3]}, nil)
	require.NoError(t, err)
	//
	out1, err := cb.AddOutputNode(plain, []uint64{xor1}, nil)
	require.NoError(t, err)
	out2, err := cb.AddOutputNode(plain, []uint64{xor2}, nil)
	require.NoError(t, err)
	//
	data, err := cb.Finish()
	require.NoError(t, err)
	//
	context, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	//
	oracle := context.CreateCopy()
	//
	circuit, err := context.Mutable()
	require.NoError(t, err)
	//
	simdID, err := circuit.ReplaceNodesBySIMDNode([]uint64{xor1, xor2})
	require.NoError(t, err)
	require.NoError(t, circuit.CheckTopologicalOrder())
	// the fused node concatenates both input groups
	simd, err := circuit.NodeWithID(simdID)
	require.NoError(t, err)
	require.Equal(t, ir.PrimitiveOperationXor, simd.Operation())
	require.Equal(t, []uint64{inputs[0], inputs[1], inputs[2], inputs[3]}, simd.InputIDs())
	require.Equal(t, uint(2), simd.NumOutputs())
	// consumers were rewired onto the fused outputs, materializing offsets
	first, err := circuit.NodeWithID(out1)
	require.NoError(t, err)
	require.Equal(t, []uint64{simdID}, first.InputIDs())
	require.Equal(t, []uint32{0}, first.InputOffsets())
	//
	second, err := circuit.NodeWithID(out2)
	require.NoError(t, err)
	require.Equal(t, []uint64{simdID}, second.InputIDs())
	require.Equal(t, []uint32{1}, second.InputOffsets())
	// evaluation agrees with the oracle
	oracleView, err := oracle.ReadOnly()
	require.NoError(t, err)
	//
	for mask := 0; mask < 16; mask++ {
		expected := backend.Environment{}
		actual := backend.Environment{}
		//
		for i, id := range inputs {
			bit := mask&(1<<i) != 0
			expected[id] = []any{bit}
			actual[id] = []any{bit}
		}
		//
		require.NoError(t, backend.EvaluateCircuit(oracleView, expected))
		require.NoError(t, backend.EvaluateCircuit(circuit, actual))
		require.Equal(t, expected[out1][0], actual[out1][0])
		require.Equal(t, expected[out2][0], actual[out2][0])
	}
}

func TestReplaceNodesBySIMDNodeValidation(t *testing.T) {
	cb := frontend.NewCircuitBuilder("mixed")
	sec := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	a, err := cb.AddInputNode(sec)
	require.NoError(t, err)
	b, err := cb.AddInputNode(sec)
	require.NoError(t, err)
	//
	xor, err := cb.AddGate(ir.PrimitiveOperationXor, []uint64{a, b}, nil)
	require.NoError(t, err)
	and, err := cb.AddGate(ir.PrimitiveOperationAnd, []uint64{a, b}, nil)
	require.NoError(t, err)
	//
	_, err = cb.AddOutputNode(sec, []uint64{xor}, nil)
	require.NoError(t, err)
	_, err = cb.AddOutputNode(sec, []uint64{and}, nil)
	require.NoError(t, err)
	//
	data, err := cb.Finish()
	require.NoError(t, err)
	//
	context, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	//
	circuit, err := context.Mutable()
	require.NoError(t, err)
	//
	_, err = circuit.ReplaceNodesBySIMDNode([]uint64{xor, and})
	require.ErrorIs(t, err, core.ErrInconsistentRewrite)
	//
	_, err = circuit.ReplaceNodesBySIMDNode([]uint64{xor, 999})
	require.ErrorIs(t, err, core.ErrNotFound)
	//
	_, err = circuit.ReplaceNodesBySIMDNode(nil)
	require.ErrorIs(t, err, core.ErrInconsistentRewrite)
}
