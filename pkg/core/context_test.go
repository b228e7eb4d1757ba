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
	"path/filepath"
	"testing"

	"github.com/encryptogroup/fuse/pkg/backend"
	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/frontend"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/stretchr/testify/require"
)

// notCircuit builds the canonical one-bit inverter: one input, one Not, one
// output.  It returns the serialized circuit and the input/output node ids.
func notCircuit(t *testing.T) (data []byte, in, out uint64) {
	t.Helper()
	//
	cb := frontend.NewCircuitBuilder("not1")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	plainBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelPlaintext, nil, "")
	//
	in, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	//
	not, err := cb.AddGate(ir.PrimitiveOperationNot, []uint64{in}, nil)
	require.NoError(t, err)
	//
	out, err = cb.AddOutputNode(plainBool, []uint64{not}, nil)
	require.NoError(t, err)
	//
	data, err = cb.Finish()
	require.NoError(t, err)
	//
	return data, in, out
}

// evaluateBool runs a single-bit circuit on one input value.
func evaluateBool(t *testing.T, circuit core.Circuit, in, out uint64, value bool) bool {
	t.Helper()
	//
	env := backend.Environment{in: {value}}
	require.NoError(t, backend.EvaluateCircuit(circuit, env))
	//
	require.Len(t, env[out], 1)
	//
	return env[out][0].(bool)
}

func TestNotCircuitRoundTrip(t *testing.T) {
	data, in, out := notCircuit(t)
	//
	context, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	require.True(t, context.IsPacked())
	// write, re-read
	path := filepath.Join(t.TempDir(), "not1.fs")
	require.NoError(t, context.WriteToFile(path))
	//
	reread, err := core.ReadCircuitFromFile(path)
	require.NoError(t, err)
	// packed bytes round-trip identically
	require.Equal(t, context.Bytes(), reread.Bytes())
	// evaluate over the zero-copy view
	view, err := reread.BufferView()
	require.NoError(t, err)
	require.Equal(t, "not1", view.Name())
	require.Equal(t, uint(3), view.NumNodes())
	require.False(t, evaluateBool(t, view, in, out, true))
	require.True(t, evaluateBool(t, view, in, out, false))
	// unpack and evaluate over the object view
	object, err := reread.Mutable()
	require.NoError(t, err)
	require.False(t, reread.IsPacked())
	require.False(t, evaluateBool(t, object, in, out, true))
	require.True(t, evaluateBool(t, object, in, out, false))
}

func TestBufferViewRequiresPacked(t *testing.T) {
	data, _, _ := notCircuit(t)
	//
	context, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	//
	_, err = context.Mutable()
	require.NoError(t, err)
	//
	_, err = context.BufferView()
	require.ErrorIs(t, err, core.ErrWrongState)
	// repacking restores the buffer view
	context.Pack()
	//
	_, err = context.BufferView()
	require.NoError(t, err)
}

func TestPackUnpackPreservesObservableIR(t *testing.T) {
	data, _, _ := notCircuit(t)
	//
	context, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	//
	packed, err := context.ReadOnly()
	require.NoError(t, err)
	//
	before := snapshotCircuit(packed)
	// unpack, repack, compare
	_, err = context.Mutable()
	require.NoError(t, err)
	//
	context.Pack()
	//
	unpacked, err := context.ReadOnly()
	require.NoError(t, err)
	require.Equal(t, before, snapshotCircuit(unpacked))
}

func TestCreateCopyIsIndependent(t *testing.T) {
	data, _, _ := notCircuit(t)
	//
	original, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	//
	_, err = original.Mutable()
	require.NoError(t, err)
	//
	clone := original.CreateCopy()
	//
	mutable, err := clone.Mutable()
	require.NoError(t, err)
	//
	mutable.SetAttributeValue("simd", "8")
	//
	view, err := original.ReadOnly()
	require.NoError(t, err)
	require.Equal(t, "", view.AttributeValue("simd"))
	//
	cloneView, err := clone.ReadOnly()
	require.NoError(t, err)
	require.Equal(t, "8", cloneView.AttributeValue("simd"))
}

func TestResetReleasesState(t *testing.T) {
	data, _, _ := notCircuit(t)
	//
	context, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	//
	context.Reset()
	//
	_, err = context.ReadOnly()
	require.ErrorIs(t, err, core.ErrDecode)
}

func TestInputOutputOnlyCircuit(t *testing.T) {
	cb := frontend.NewCircuitBuilder("wire")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	//
	out, err := cb.AddOutputNode(secBool, []uint64{in}, nil)
	require.NoError(t, err)
	//
	data, err := cb.Finish()
	require.NoError(t, err)
	//
	context, err := core.NewCircuitContext(data)
	require.NoError(t, err)
	//
	view, err := context.ReadOnly()
	require.NoError(t, err)
	require.True(t, evaluateBool(t, view, in, out, true))
	// unpack and re-pack without error
	_, err = context.Mutable()
	require.NoError(t, err)
	//
	context.Pack()
	require.True(t, context.IsPacked())
}

func TestDecodeErrorOnGarbage(t *testing.T) {
	_, err := core.NewCircuitContext([]byte{1, 2, 3})
	require.ErrorIs(t, err, core.ErrDecode)
}

// snapshotCircuit captures the observable IR of a circuit for equality
// comparison across representations.
type nodeSnapshot struct {
	id      uint64
	op      ir.PrimitiveOperation
	inputs  []uint64
	offsets []uint32
	outputs uint32
	annot   string
}

func snapshotCircuit(circuit core.Circuit) []nodeSnapshot {
	var nodes []nodeSnapshot
	//
	circuit.Traverse(func(node core.Node) {
		nodes = append(nodes, nodeSnapshot{
			id:      node.ID(),
			op:      node.Operation(),
			inputs:  append([]uint64{}, node.InputIDs()...),
			offsets: append([]uint32{}, node.InputOffsets()...),
			outputs: uint32(node.NumOutputs()),
			annot:   node.Annotations(),
		})
	})
	//
	return nodes
}
