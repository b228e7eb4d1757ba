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
package frontend

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/ir"
)

// The Bristol format is the common ASCII interchange format for gate-level
// boolean circuits: a header line with the gate and wire counts, a second
// line with the two parties' input wire counts and the output wire count,
// then one line per gate ("2 1 <in1> <in2> <out> AND" etc.).  Wires double as
// node identifiers, which is why the builder's caller-provided-identifier
// overloads exist.

// BristolFromFile parses a Bristol circuit file into a circuit builder named
// after the file.
func BristolFromFile(filename string) (*CircuitBuilder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	//
	defer f.Close()
	//
	base := path.Base(filename)
	name := strings.TrimSuffix(base, path.Ext(base))
	//
	return BristolFromReader(name, f)
}

// BristolFromReader parses a Bristol circuit from a reader into a circuit
// builder with the given name.
func BristolFromReader(name string, r io.Reader) (*CircuitBuilder, error) {
	var (
		scanner = bufio.NewScanner(r)
		builder = NewCircuitBuilder(name)
	)
	//
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	// Header: number of gates, number of wires.
	header, err := nextFields(scanner)
	if err != nil {
		return nil, err
	}
	//
	if len(header) < 2 {
		return nil, fmt.Errorf("bristol header %q: %w", strings.Join(header, " "), core.ErrDecode)
	}
	//
	numWires, err := strconv.ParseUint(header[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bristol wire count: %w", core.ErrDecode)
	}
	// Second line: input wires per party, output wires.
	counts, err := nextFields(scanner)
	if err != nil {
		return nil, err
	}
	//
	if len(counts) < 3 {
		return nil, fmt.Errorf("bristol i/o counts %q: %w", strings.Join(counts, " "), core.ErrDecode)
	}
	//
	inputsPartyOne, err1 := strconv.ParseUint(counts[0], 10, 32)
	inputsPartyTwo, err2 := strconv.ParseUint(counts[1], 10, 32)
	numOutputs, err3 := strconv.ParseUint(counts[2], 10, 32)
	//
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("bristol i/o counts %q: %w", strings.Join(counts, " "), core.ErrDecode)
	}
	// Wire address spaces: party-one inputs, party-two inputs, intermediate
	// wires, output wires.
	secureBool := builder.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelSecure, nil, "")
	plainBool := builder.AddDataType(ir.PrimitiveTypeBool, ir.SecurityLevelPlaintext, nil, "")
	//
	for wire := uint64(0); wire < inputsPartyOne; wire++ {
		if err := builder.AddInputNodeWithID(wire, secureBool, "owner: 1"); err != nil {
			return nil, err
		}
	}
	//
	for wire := inputsPartyOne; wire < inputsPartyOne+inputsPartyTwo; wire++ {
		if err := builder.AddInputNodeWithID(wire, secureBool, "owner: 2"); err != nil {
			return nil, err
		}
	}
	//
	outBegin := numWires - numOutputs
	//
	var outputWires []uint64
	// Gate lines.
	for {
		fields, err := nextFields(scanner)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		//
		outWire, err := parseGate(builder, fields)
		if err != nil {
			return nil, err
		}
		//
		if outWire >= outBegin {
			outputWires = append(outputWires, outWire)
		}
	}
	// Output nodes take the wires beyond the wire address space.
	sort.Slice(outputWires, func(i, j int) bool { return outputWires[i] < outputWires[j] })
	//
	for i, wire := range outputWires {
		if err := builder.AddOutputNodeWithID(numWires+uint64(i), plainBool, []uint64{wire}, nil); err != nil {
			return nil, err
		}
	}
	//
	return builder, nil
}

// parseGate translates one gate line, returning its output wire.
func parseGate(builder *CircuitBuilder, fields []string) (uint64, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("bristol gate %q: %w", strings.Join(fields, " "), core.ErrDecode)
	}
	//
	numInputs, err1 := strconv.Atoi(fields[0])
	numOutputs, err2 := strconv.Atoi(fields[1])
	//
	if err1 != nil || err2 != nil || numOutputs != 1 || len(fields) != numInputs+4 {
		return 0, fmt.Errorf("bristol gate %q: %w", strings.Join(fields, " "), core.ErrDecode)
	}
	//
	wires := make([]uint64, numInputs+1)
	for i := range wires {
		wires[i], err1 = strconv.ParseUint(fields[2+i], 10, 64)
		if err1 != nil {
			return 0, fmt.Errorf("bristol gate %q: %w", strings.Join(fields, " "), core.ErrDecode)
		}
	}
	//
	var (
		inWires = wires[:numInputs]
		outWire = wires[numInputs]
		opName  = fields[len(fields)-1]
	)
	//
	var operation ir.PrimitiveOperation
	//
	switch opName {
	case "AND":
		operation = ir.PrimitiveOperationAnd
	case "XOR":
		operation = ir.PrimitiveOperationXor
	case "OR":
		operation = ir.PrimitiveOperationOr
	case "INV", "NOT":
		operation = ir.PrimitiveOperationNot
	default:
		return 0, fmt.Errorf("bristol gate operation %s: %w", opName, core.ErrDecode)
	}
	//
	if err := builder.AddGateWithID(outWire, operation, inWires, nil); err != nil {
		return 0, err
	}
	//
	return outWire, nil
}

// nextFields returns the whitespace-separated fields of the next non-empty
// line, or io.EOF.
func nextFields(scanner *bufio.Scanner) ([]string, error) {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	//
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	//
	return nil, io.EOF
}
