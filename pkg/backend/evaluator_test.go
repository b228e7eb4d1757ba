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
package backend_test

import (
	"testing"

	"github.com/encryptogroup/fuse/pkg/backend"
	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/frontend"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/stretchr/testify/require"
)

// finishView turns a circuit builder into a read-only view.
func finishView(t *testing.T, cb *frontend.CircuitBuilder) core.Circuit {
	t.Helper()
	//
	data, err := cb.Finish()
	require.NoError(t, err)
	//
	context, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	//
	view, err := context.ReadOnly()
	require.NoError(t, err)
	//
	return view
}

func TestMergeSplitRoundTrip(t *testing.T) {
	cb := frontend.NewCircuitBuilder("bits8")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	secU8 := cb.AddDataType(ir.PrimitiveTypeUInt8, ir.SecurityLevelSecure, nil, "")
	plainBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelPlaintext, nil, "")
	//
	var (
		inputs [8]uint64
		err    error
	)
	//
	for i := range inputs {
		inputs[i], err = cb.AddInputNode(secBool)
		require.NoError(t, err)
	}
	//
	merged, err := cb.AddNode(frontend.NodeSpec{
		Operation:   ir.PrimitiveOperationMerge,
		InputIDs:    inputs[:],
		NumOutputs:  1,
		OutputTypes: []uint{secU8},
	})
	require.NoError(t, err)
	//
	split, err := cb.AddSplitNode(merged, secU8)
	require.NoError(t, err)
	//
	var outputs [8]uint64
	for i := range outputs {
		outputs[i], err = cb.AddOutputNode(plainBool, []uint64{split}, []uint32{uint32(i)})
		require.NoError(t, err)
	}
	//
	view := finishView(t, cb)
	// the output nodes carry the offset list 0..7 on the split producer
	for i, id := range outputs {
		node, err := view.NodeWithID(id)
		require.NoError(t, err)
		require.Equal(t, []uint64{split}, node.InputIDs())
		require.Equal(t, []uint32{uint32(i)}, node.InputOffsets())
	}
	// bit 0 is the first input
	pattern := [8]bool{true, false, true, false, true, false, true, false}
	//
	env := backend.Environment{}
	for i, id := range inputs {
		env[id] = []any{pattern[i]}
	}
	//
	require.NoError(t, backend.EvaluateCircuit(view, env))
	require.Equal(t, uint8(0b01010101), env[merged][0].(uint8))
	//
	for i, id := range outputs {
		require.Equal(t, pattern[i], env[id][0].(bool), "bit %d", i)
	}
}

func TestSplitOfBoolHasOneOutput(t *testing.T) {
	cb := frontend.NewCircuitBuilder("split1")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	//
	split, err := cb.AddSplitNode(in, secBool)
	require.NoError(t, err)
	//
	_, err = cb.AddOutputNode(secBool, []uint64{split}, nil)
	require.NoError(t, err)
	//
	view := finishView(t, cb)
	//
	node, err := view.NodeWithID(split)
	require.NoError(t, err)
	require.Equal(t, uint(1), node.NumOutputs())
	//
	env := backend.Environment{in: {true}}
	require.NoError(t, backend.EvaluateCircuit(view, env))
	require.Equal(t, true, env[split][0].(bool))
}

func TestArithmeticAndComparison(t *testing.T) {
	cb := frontend.NewCircuitBuilder("arith")
	secI32 := cb.AddDataType(ir.PrimitiveTypeInt32, ir.SecurityLevelSecure, nil, "")
	plainBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelPlaintext, nil, "")
	//
	a, err := cb.AddInputNode(secI32)
	require.NoError(t, err)
	b, err := cb.AddInputNode(secI32)
	require.NoError(t, err)
	//
	sum, err := cb.AddGate(ir.PrimitiveOperationAdd, []uint64{a, b}, nil)
	require.NoError(t, err)
	//
	product, err := cb.AddGate(ir.PrimitiveOperationMul, []uint64{a, b}, nil)
	require.NoError(t, err)
	//
	squared, err := cb.AddGate(ir.PrimitiveOperationSquare, []uint64{a}, nil)
	require.NoError(t, err)
	//
	negated, err := cb.AddGate(ir.PrimitiveOperationNeg, []uint64{b}, nil)
	require.NoError(t, err)
	//
	greater, err := cb.AddGate(ir.PrimitiveOperationGt, []uint64{sum, product}, nil)
	require.NoError(t, err)
	//
	_, err = cb.AddOutputNode(plainBool, []uint64{greater}, nil)
	require.NoError(t, err)
	//
	view := finishView(t, cb)
	//
	env := backend.Environment{a: {int32(5)}, b: {int32(3)}}
	require.NoError(t, backend.EvaluateCircuit(view, env))
	//
	require.Equal(t, int32(8), env[sum][0])
	require.Equal(t, int32(15), env[product][0])
	require.Equal(t, int32(25), env[squared][0])
	require.Equal(t, int32(-3), env[negated][0])
	require.Equal(t, false, env[greater][0])
}

func TestMuxAndSelectOffset(t *testing.T) {
	cb := frontend.NewCircuitBuilder("mux")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	secU8 := cb.AddDataType(ir.PrimitiveTypeUInt8, ir.SecurityLevelSecure, nil, "")
	//
	cond, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	//
	value, err := cb.AddInputNode(secU8)
	require.NoError(t, err)
	//
	split, err := cb.AddSplitNode(value, secU8)
	require.NoError(t, err)
	//
	high, err := cb.AddSelectOffsetNode(split, 7)
	require.NoError(t, err)
	//
	low, err := cb.AddSelectOffsetNode(split, 0)
	require.NoError(t, err)
	//
	mux, err := cb.AddGate(ir.PrimitiveOperationMux, []uint64{cond, high, low}, nil)
	require.NoError(t, err)
	//
	_, err = cb.AddOutputNode(secBool, []uint64{mux}, nil)
	require.NoError(t, err)
	//
	view := finishView(t, cb)
	//
	env := backend.Environment{cond: {true}, value: {uint8(0x81)}}
	require.NoError(t, backend.EvaluateCircuit(view, env))
	require.Equal(t, true, env[mux][0].(bool))
	//
	env = backend.Environment{cond: {false}, value: {uint8(0x80)}}
	require.NoError(t, backend.EvaluateCircuit(view, env))
	require.Equal(t, false, env[mux][0].(bool))
}

func TestEvaluatorErrors(t *testing.T) {
	cb := frontend.NewCircuitBuilder("broken")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	//
	custom, err := cb.AddCustomNode("mystery", []uint64{in}, nil, 1)
	require.NoError(t, err)
	//
	_, err = cb.AddOutputNode(secBool, []uint64{custom}, nil)
	require.NoError(t, err)
	//
	view := finishView(t, cb)
	// custom operations are not interpretable
	env := backend.Environment{in: {true}}
	require.ErrorIs(t, backend.EvaluateCircuit(view, env), core.ErrUnsupportedOperation)
	// missing input seeds surface as missing values
	require.ErrorIs(t, backend.EvaluateCircuit(view, backend.Environment{}), core.ErrMissingValue)
	// calls cannot resolve without a module
	cb2 := frontend.NewCircuitBuilder("lonely_call")
	sec2 := cb2.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in2, err := cb2.AddInputNode(sec2)
	require.NoError(t, err)
	//
	call, err := cb2.AddCallToSubcircuitNode([]uint64{in2}, nil, "elsewhere", 1)
	require.NoError(t, err)
	//
	_, err = cb2.AddOutputNode(sec2, []uint64{call}, nil)
	require.NoError(t, err)
	//
	view2 := finishView(t, cb2)
	require.ErrorIs(t, backend.EvaluateCircuit(view2, backend.Environment{in2: {true}}),
		core.ErrUnsupportedOperation)
}

func TestBooleanInterpreter(t *testing.T) {
	cb := frontend.NewCircuitBuilder("gates")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	a, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	b, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	//
	nand, err := cb.AddGate(ir.PrimitiveOperationNand, []uint64{a, b}, nil)
	require.NoError(t, err)
	//
	xnor, err := cb.AddGate(ir.PrimitiveOperationXnor, []uint64{a, b}, nil)
	require.NoError(t, err)
	//
	out, err := cb.AddOutputNode(secBool, []uint64{nand}, nil)
	require.NoError(t, err)
	//
	view := finishView(t, cb)
	//
	env := map[uint64]bool{a: true, b: true}
	require.NoError(t, backend.InterpretBoolean(view, env))
	require.False(t, env[nand])
	require.True(t, env[xnor])
	require.False(t, env[out])
}

func TestCircuitToDot(t *testing.T) {
	cb := frontend.NewCircuitBuilder("viz")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	//
	not, err := cb.AddGate(ir.PrimitiveOperationNot, []uint64{in}, nil)
	require.NoError(t, err)
	//
	_, err = cb.AddOutputNode(secBool, []uint64{not}, nil)
	require.NoError(t, err)
	//
	view := finishView(t, cb)
	//
	dot := backend.CircuitToDot(view)
	require.Contains(t, dot, "digraph \"viz\"")
	require.Contains(t, dot, "color=green")
	require.Contains(t, dot, "color=red")
	require.Contains(t, dot, "Not")
}
