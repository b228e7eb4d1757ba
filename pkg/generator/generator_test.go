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
package generator_test

import (
	"path/filepath"
	"testing"

	"github.com/encryptogroup/fuse/pkg/backend"
	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/frontend"
	"github.com/encryptogroup/fuse/pkg/generator"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/encryptogroup/fuse/pkg/passes"
	"github.com/stretchr/testify/require"
)

// compressCircuit builds a toy compression function: two buffer inputs, one
// state input, one output state' = (b0 & b1) ^ s.
func compressCircuit(t *testing.T) []byte {
	t.Helper()
	//
	cb := frontend.NewCircuitBuilder("compress")
	sec := cb.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	//
	b0, err := cb.AddInputNode(sec)
	require.NoError(t, err)
	b1, err := cb.AddInputNode(sec)
	require.NoError(t, err)
	s, err := cb.AddInputNode(sec)
	require.NoError(t, err)
	//
	and, err := cb.AddGate(ir.PrimitiveOperationAnd, []uint64{b0, b1}, nil)
	require.NoError(t, err)
	//
	xor, err := cb.AddGate(ir.PrimitiveOperationXor, []uint64{and, s}, nil)
	require.NoError(t, err)
	//
	_, err = cb.AddOutputNode(sec, []uint64{xor}, nil)
	require.NoError(t, err)
	//
	data, err := cb.Finish()
	require.NoError(t, err)
	//
	return data
}

// snapshot captures the observable shape of a module.
func snapshot(t *testing.T, module core.Module) map[string]map[string]int {
	t.Helper()
	//
	operations, err := passes.ModuleOperations(module)
	require.NoError(t, err)
	//
	return operations
}

func TestChainedCallModuleRoundTrip(t *testing.T) {
	base := compressCircuit(t)
	//
	for _, calls := range []uint{1, 10, 100} {
		context, err := generator.ChainedCallModule(base, calls)
		require.NoError(t, err)
		//
		module, err := context.ReadOnly()
		require.NoError(t, err)
		require.Equal(t, "main", module.EntryName())
		require.ElementsMatch(t, []string{"compress", "main"}, module.CircuitNames())
		//
		entry, err := module.EntryCircuit()
		require.NoError(t, err)
		require.Equal(t, uint(3), entry.NumInputs())
		require.Equal(t, uint(1), entry.NumOutputs())
		//
		calls_, err := passes.ModuleCallStacks(module)
		require.NoError(t, err)
		require.Equal(t, int(calls), calls_["main"]["compress"])
		// serialize, re-read, compare observable IR
		path := filepath.Join(t.TempDir(), "chained.mfs")
		require.NoError(t, context.WriteToFile(path))
		//
		reread, err := core.ReadModuleFromFile(path)
		require.NoError(t, err)
		//
		rereadModule, err := reread.ReadOnly()
		require.NoError(t, err)
		require.Equal(t, module.EntryName(), rereadModule.EntryName())
		require.Equal(t, snapshot(t, module), snapshot(t, rereadModule))
	}
}

func TestChainedCallModuleEvaluates(t *testing.T) {
	base := compressCircuit(t)
	//
	context, err := generator.ChainedCallModule(base, 2)
	require.NoError(t, err)
	//
	module, err := context.ReadOnly()
	require.NoError(t, err)
	//
	entry, err := module.EntryCircuit()
	require.NoError(t, err)
	//
	inputs := entry.InputIDs()
	require.Len(t, inputs, 3)
	//
	outputs := entry.OutputIDs()
	require.Len(t, outputs, 1)
	// state' = (b0 & b1) ^ s applied twice: with b0=b1=1, s toggles each call
	env := backend.Environment{inputs[0]: {true}, inputs[1]: {true}, inputs[2]: {false}}
	require.NoError(t, backend.EvaluateModule(module, env))
	require.Equal(t, false, env[outputs[0]][0].(bool))
	// one call leaves the toggle half-way
	single, err := generator.ChainedCallModule(base, 1)
	require.NoError(t, err)
	//
	singleModule, err := single.ReadOnly()
	require.NoError(t, err)
	//
	singleEntry, err := singleModule.EntryCircuit()
	require.NoError(t, err)
	//
	env = backend.Environment{
		singleEntry.InputIDs()[0]: {true},
		singleEntry.InputIDs()[1]: {true},
		singleEntry.InputIDs()[2]: {false},
	}
	require.NoError(t, backend.EvaluateModule(singleModule, env))
	require.Equal(t, true, env[singleEntry.OutputIDs()[0]][0].(bool))
}

func TestChainedCallModuleRejectsBadBase(t *testing.T) {
	_, err := generator.ChainedCallModule([]byte{0, 1}, 1)
	require.ErrorIs(t, err, core.ErrDecode)
	//
	base := compressCircuit(t)
	_, err = generator.ChainedCallModule(base, 0)
	require.ErrorIs(t, err, core.ErrInconsistentRewrite)
}
