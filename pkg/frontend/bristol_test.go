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
	"strings"
	"testing"

	"github.com/encryptogroup/fuse/pkg/backend"
	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/frontend"
	"github.com/stretchr/testify/require"
)

// A two-party one-gate circuit: wires 0 and 1 are the party inputs, wire 2 is
// the output wire of the single AND gate.
const andBristol = `1 3
1 1 1

2 1 0 1 2 AND
`

// A full adder over wires 0..2 with xor/and/or gates; output wires 6 and 7.
const adderBristol = `5 8
2 1 2

2 1 0 1 3 XOR
2 1 0 1 4 AND
2 1 3 2 6 XOR
2 1 3 2 5 AND
2 1 4 5 7 OR
`

func TestBristolAndGate(t *testing.T) {
	builder, err := frontend.BristolFromReader("and1", strings.NewReader(andBristol))
	require.NoError(t, err)
	//
	data, err := builder.Finish()
	require.NoError(t, err)
	//
	view, err := core.NewCircuitBufferViewFromBytes(data)
	require.NoError(t, err)
	require.Equal(t, "and1", view.Name())
	require.Equal(t, uint(2), view.NumInputs())
	require.Equal(t, uint(1), view.NumOutputs())
	// input nodes carry their party ownership annotation
	first, err := view.NodeWithID(0)
	require.NoError(t, err)
	require.Equal(t, "1", first.AttributeValue("owner"))
	//
	second, err := view.NodeWithID(1)
	require.NoError(t, err)
	require.Equal(t, "2", second.AttributeValue("owner"))
	// and it computes an and
	env := map[uint64]bool{0: true, 1: true}
	require.NoError(t, backend.InterpretBoolean(view, env))
	require.True(t, env[view.OutputIDs()[0]])
	//
	env = map[uint64]bool{0: true, 1: false}
	require.NoError(t, backend.InterpretBoolean(view, env))
	require.False(t, env[view.OutputIDs()[0]])
}

func TestBristolFullAdder(t *testing.T) {
	builder, err := frontend.BristolFromReader("fa", strings.NewReader(adderBristol))
	require.NoError(t, err)
	//
	data, err := builder.Finish()
	require.NoError(t, err)
	//
	view, err := core.NewCircuitBufferViewFromBytes(data)
	require.NoError(t, err)
	require.Equal(t, uint(3), view.NumInputs())
	require.Equal(t, uint(2), view.NumOutputs())
	// exhaustively check sum and carry
	for mask := 0; mask < 8; mask++ {
		var (
			a     = mask&1 != 0
			b     = mask&2 != 0
			cin   = mask&4 != 0
			ones  = 0
			env   = map[uint64]bool{0: a, 1: b, 2: cin}
		)
		//
		for _, bit := range []bool{a, b, cin} {
			if bit {
				ones++
			}
		}
		//
		require.NoError(t, backend.InterpretBoolean(view, env))
		// output wire 6 is the sum, wire 7 the carry
		require.Equal(t, ones%2 == 1, env[6], "sum of %03b", mask)
		require.Equal(t, ones >= 2, env[7], "carry of %03b", mask)
	}
}

func TestBristolMalformed(t *testing.T) {
	_, err := frontend.BristolFromReader("bad", strings.NewReader("nonsense\n"))
	require.ErrorIs(t, err, core.ErrDecode)
	//
	_, err = frontend.BristolFromReader("bad", strings.NewReader("1 3\n1 1 1\n2 1 0 1 2 NOPE\n"))
	require.ErrorIs(t, err, core.ErrDecode)
}
