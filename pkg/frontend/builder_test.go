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
package frontend_test

import (
	"testing"

	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/frontend"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/stretchr/testify/require"
)

func TestIdentifierAllocationSkipsCustomIDs(t *testing.T) {
	cb := frontend.NewCircuitBuilder("ids")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	// claim 1 and 3 externally
	require.NoError(t, cb.AddInputNodeWithID(1, secBool))
	require.NoError(t, cb.AddInputNodeWithID(3, secBool))
	// generated ids skip over the claimed ones
	first, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	require.Equal(t, uint64(0), first)
	//
	second, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	require.Equal(t, uint64(2), second)
	//
	third, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	require.Equal(t, uint64(4), third)
}

func TestDuplicateIdentifierRejected(t *testing.T) {
	cb := frontend.NewCircuitBuilder("dups")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	_, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	_, err = cb.AddInputNode(secBool)
	require.NoError(t, err)
	// a generated id cannot be reclaimed
	err = cb.AddInputNodeWithID(1, secBool)
	require.ErrorIs(t, err, core.ErrDuplicateIdentifier)
	// a custom id cannot be claimed twice
	require.NoError(t, cb.AddInputNodeWithID(7, secBool))
	err = cb.AddInputNodeWithID(7, secBool)
	require.ErrorIs(t, err, core.ErrDuplicateIdentifier)
}

func TestSplitWidths(t *testing.T) {
	cb := frontend.NewCircuitBuilder("splits")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	secU32 := cb.AddDataType(ir.PrimitiveTypeUInt32, ir.SecurityLevelSecure, nil, "")
	secF32 := cb.AddDataType(ir.PrimitiveTypeFloat, ir.SecurityLevelSecure, nil, "")
	//
	inBool, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	inU32, err := cb.AddInputNode(secU32)
	require.NoError(t, err)
	inF32, err := cb.AddInputNode(secF32)
	require.NoError(t, err)
	//
	splitBool, err := cb.AddSplitNode(inBool, secBool)
	require.NoError(t, err)
	//
	splitU32, err := cb.AddSplitNode(inU32, secU32)
	require.NoError(t, err)
	// floats have no bit decomposition
	_, err = cb.AddSplitNode(inF32, secF32)
	require.ErrorIs(t, err, core.ErrTypeMismatch)
	//
	_, err = cb.AddOutputNode(secBool, []uint64{splitBool}, nil)
	require.NoError(t, err)
	//
	data, err := cb.Finish()
	require.NoError(t, err)
	//
	view, err := core.NewCircuitBufferViewFromBytes(data)
	require.NoError(t, err)
	//
	one, err := view.NodeWithID(splitBool)
	require.NoError(t, err)
	require.Equal(t, uint(1), one.NumOutputs())
	//
	thirtyTwo, err := view.NodeWithID(splitU32)
	require.NoError(t, err)
	require.Equal(t, uint(32), thirtyTwo.NumOutputs())
}

func TestBuilderSingleShot(t *testing.T) {
	cb := frontend.NewCircuitBuilder("sealed")
	secBool := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in, err := cb.AddInputNode(secBool)
	require.NoError(t, err)
	//
	_, err = cb.AddOutputNode(secBool, []uint64{in}, nil)
	require.NoError(t, err)
	//
	first, err := cb.Finish()
	require.NoError(t, err)
	// a second finish returns the same bytes
	second, err := cb.Finish()
	require.NoError(t, err)
	require.Equal(t, first, second)
	// further mutation is rejected
	_, err = cb.AddGate(ir.PrimitiveOperationNot, []uint64{in}, nil)
	require.ErrorIs(t, err, core.ErrWrongState)
}

func TestModuleBuilderValidatesCallTargets(t *testing.T) {
	mb := frontend.NewModuleBuilder()
	//
	main := mb.MainCircuit()
	secBool := main.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in, err := main.AddInputNode(secBool)
	require.NoError(t, err)
	//
	call, err := main.AddCallToSubcircuitNode([]uint64{in}, nil, "nowhere", 1)
	require.NoError(t, err)
	//
	_, err = main.AddOutputNode(secBool, []uint64{call}, nil)
	require.NoError(t, err)
	//
	_, err = mb.Finish()
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestModuleBuilderRejectsCallCycles(t *testing.T) {
	mb := frontend.NewModuleBuilder()
	//
	c1 := mb.AddCircuit("c1")
	sec1 := c1.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in1, err := c1.AddInputNode(sec1)
	require.NoError(t, err)
	//
	call1, err := c1.AddCallToSubcircuitNode([]uint64{in1}, nil, "c2", 1)
	require.NoError(t, err)
	//
	_, err = c1.AddOutputNode(sec1, []uint64{call1}, nil)
	require.NoError(t, err)
	//
	c2 := mb.AddCircuit("c2")
	sec2 := c2.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in2, err := c2.AddInputNode(sec2)
	require.NoError(t, err)
	//
	call2, err := c2.AddCallToSubcircuitNode([]uint64{in2}, nil, "c1", 1)
	require.NoError(t, err)
	//
	_, err = c2.AddOutputNode(sec2, []uint64{call2}, nil)
	require.NoError(t, err)
	//
	mb.SetEntryCircuitName("c1")
	//
	_, err = mb.Finish()
	require.ErrorIs(t, err, core.ErrCycleIntroduced)
}

func TestModuleBuilderMissingEntry(t *testing.T) {
	mb := frontend.NewModuleBuilder()
	//
	c1 := mb.AddCircuit("c1")
	sec := c1.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	in, err := c1.AddInputNode(sec)
	require.NoError(t, err)
	//
	_, err = c1.AddOutputNode(sec, []uint64{in}, nil)
	require.NoError(t, err)
	// entry defaults to "main", which is absent
	_, err = mb.Finish()
	require.ErrorIs(t, err, core.ErrNotFound)
}
