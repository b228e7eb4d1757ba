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

	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/frontend"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/stretchr/testify/require"
)

// constantNode builds a circuit holding a single constant and returns a
// read-only handle to that node.
func constantNode(t *testing.T, build func(cb *frontend.CircuitBuilder) (uint64, error)) core.Node {
	t.Helper()
	//
	cb := frontend.NewCircuitBuilder("consts")
	//
	id, err := build(cb)
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
	//
	node, err := view.NodeWithID(id)
	require.NoError(t, err)
	//
	return node
}

func TestConstantScalar(t *testing.T) {
	node := constantNode(t, func(cb *frontend.CircuitBuilder) (uint64, error) {
		u32 := cb.AddDataType(ir.PrimitiveTypeUInt32, ir.SecurityLevelPlaintext, nil, "")
		return frontend.AddConstant[uint32](cb, u32, 42)
	})
	//
	value, err := core.ConstantScalar[uint32](node)
	require.NoError(t, err)
	require.Equal(t, uint32(42), value)
	// decoding under a different declared type fails
	_, err = core.ConstantScalar[int64](node)
	require.ErrorIs(t, err, core.ErrTypeMismatch)
}

func TestConstantVector(t *testing.T) {
	node := constantNode(t, func(cb *frontend.CircuitBuilder) (uint64, error) {
		vec := cb.AddDataType(ir.PrimitiveTypeInt16, ir.SecurityLevelPlaintext, []int64{3}, "")
		return frontend.AddConstantVector[int16](cb, vec, []int16{-1, 0, 7})
	})
	//
	value, err := core.ConstantVector[int16](node)
	require.NoError(t, err)
	require.Equal(t, []int16{-1, 0, 7}, value)
}

func TestConstantMatrixDecodesDeclaredShape(t *testing.T) {
	node := constantNode(t, func(cb *frontend.CircuitBuilder) (uint64, error) {
		mat := cb.AddDataType(ir.PrimitiveTypeUInt8, ir.SecurityLevelPlaintext, []int64{2, 2}, "")
		return frontend.AddConstantMatrix[uint8](cb, mat, [][]uint8{{1, 2}, {3, 4}})
	})
	//
	value, err := core.ConstantMatrix[uint8](node)
	require.NoError(t, err)
	require.Equal(t, [][]uint8{{1, 2}, {3, 4}}, value)
}

func TestConstantMatrixShapeMismatch(t *testing.T) {
	node := constantNode(t, func(cb *frontend.CircuitBuilder) (uint64, error) {
		// declares 2x3 but carries 2x2
		mat := cb.AddDataType(ir.PrimitiveTypeUInt8, ir.SecurityLevelPlaintext, []int64{2, 3}, "")
		return frontend.AddConstantMatrix[uint8](cb, mat, [][]uint8{{1, 2}, {3, 4}})
	})
	//
	_, err := core.ConstantMatrix[uint8](node)
	require.ErrorIs(t, err, core.ErrTypeMismatch)
}

func TestConstantBlob(t *testing.T) {
	node := constantNode(t, func(cb *frontend.CircuitBuilder) (uint64, error) {
		blob := cb.AddDataType(ir.PrimitiveTypeUInt8, ir.SecurityLevelPlaintext, []int64{4}, "")
		return cb.AddConstantBlob(blob, []byte{0xde, 0xad, 0xbe, 0xef})
	})
	//
	value, err := core.ConstantBlob(node)
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, value)
}

func TestConstantAccessOnNonConstant(t *testing.T) {
	node := constantNode(t, func(cb *frontend.CircuitBuilder) (uint64, error) {
		secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
		return cb.AddInputNode(secBool)
	})
	//
	_, err := core.ConstantScalar[bool](node)
	require.ErrorIs(t, err, core.ErrTypeMismatch)
}

func TestAttributeGrammar(t *testing.T) {
	annotations := "owner: 1, simd: 8, flavour: weird"
	//
	require.Equal(t, "1", core.AttributeValue(annotations, "owner"))
	require.Equal(t, "8", core.AttributeValue(annotations, "simd"))
	require.Equal(t, "", core.AttributeValue(annotations, "party"))
	// unknown keys survive updates verbatim
	updated := core.SetAttributeValue(annotations, "simd", "16")
	require.Equal(t, "16", core.AttributeValue(updated, "simd"))
	require.Equal(t, "weird", core.AttributeValue(updated, "flavour"))
	// setting a fresh key appends
	appended := core.SetAttributeValue(annotations, "party", "2")
	require.Equal(t, "2", core.AttributeValue(appended, "party"))
	require.Equal(t, "1", core.AttributeValue(appended, "owner"))
}
