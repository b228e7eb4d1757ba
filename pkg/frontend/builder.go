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

// Package frontend provides the append-only constructors for circuits and
// modules, together with importers for external circuit formats.  A builder
// accumulates data types, nodes and I/O manifests, then serializes everything
// in one shot; the resulting bytes are handed to a core container.
package frontend

import (
	"fmt"
	"strings"

	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/encryptogroup/fuse/pkg/util/collection/set"
	"github.com/encryptogroup/fuse/pkg/util/file"
	flatbuffers "github.com/google/flatbuffers/go"
)

// NodeSpec is the fully general description of a node to be added.  Type
// references are indices into the builder's data type table; deduplication of
// data types is the caller's responsibility.
type NodeSpec struct {
	// InputTypes are the declared types of the input ports.
	InputTypes []uint
	// InputIDs are the producers of the input values.
	InputIDs []uint64
	// InputOffsets select outputs of multi-output producers (empty means
	// offset zero everywhere).
	InputOffsets []uint32
	// Operation is the primitive operation of the node.
	Operation ir.PrimitiveOperation
	// CustomOperationName is required for Custom nodes.
	CustomOperationName string
	// SubcircuitName is required for CallSubcircuit nodes.
	SubcircuitName string
	// Payload carries the encoded constant value for Constant nodes.
	Payload []byte
	// NumOutputs is the number of output ports.
	NumOutputs uint32
	// OutputTypes are the declared types of the output ports.
	OutputTypes []uint
	// Annotations is the free-form annotation string.
	Annotations string
}

// CircuitBuilder is the append-only constructor for a single circuit.  Nodes
// are serialized as they are added; Finish assembles the complete circuit
// buffer.  Builders are single-shot: after Finish no further mutation is
// allowed.
type CircuitBuilder struct {
	builder *flatbuffers.Builder
	name    string
	// serialized data types, referenced by index
	dataTypes []flatbuffers.UOffsetT
	// primitive kind per data type, for split-width computation
	typeKinds []ir.PrimitiveType
	// serialized nodes, in insertion order
	nodes []flatbuffers.UOffsetT
	// identifiers supplied by the caller rather than generated
	customIDs *set.SortedSet[uint64]
	// all generated ids are below this watermark
	nextID uint64
	// circuit I/O manifest
	inputIDs    []uint64
	inputTypes  []uint
	outputIDs   []uint64
	outputTypes []uint
	// names of circuits called from this one
	callTargets []string
	annotations string
	finished    []byte
}

// NewCircuitBuilder constructs an empty builder for a named circuit.
func NewCircuitBuilder(name string) *CircuitBuilder {
	return &CircuitBuilder{
		builder:   flatbuffers.NewBuilder(1024),
		name:      name,
		customIDs: set.NewSortedSet[uint64](),
	}
}

// Name returns the name of the circuit under construction.
func (p *CircuitBuilder) Name() string {
	return p.name
}

// AddAnnotations appends to the circuit annotation string.
func (p *CircuitBuilder) AddAnnotations(annotations string) {
	if p.annotations == "" {
		p.annotations = annotations
	} else {
		p.annotations += "," + annotations
	}
}

// AddDataType registers a data type and returns its index.  The builder never
// deduplicates; callers reuse indices themselves.
func (p *CircuitBuilder) AddDataType(primitive ir.PrimitiveType, security ir.SecurityLevel,
	shape []int64, annotations string) uint {
	b := p.builder
	//
	shapeOffset := flatbuffers.UOffsetT(0)
	if len(shape) > 0 {
		ir.DataTypeTableStartShapeVector(b, len(shape))
		for j := len(shape) - 1; j >= 0; j-- {
			b.PrependInt64(shape[j])
		}
		//
		shapeOffset = b.EndVector(len(shape))
	}
	//
	annotationsOffset := flatbuffers.UOffsetT(0)
	if annotations != "" {
		annotationsOffset = b.CreateString(annotations)
	}
	//
	ir.DataTypeTableStart(b)
	ir.DataTypeTableAddPrimitiveType(b, primitive)
	ir.DataTypeTableAddSecurityLevel(b, security)
	ir.DataTypeTableAddShape(b, shapeOffset)
	ir.DataTypeTableAddDataTypeAnnotations(b, annotationsOffset)
	p.dataTypes = append(p.dataTypes, ir.DataTypeTableEnd(b))
	p.typeKinds = append(p.typeKinds, primitive)
	//
	return uint(len(p.dataTypes) - 1)
}

// AddNode adds a fully specified node under the next free identifier, which
// is returned.
func (p *CircuitBuilder) AddNode(spec NodeSpec) (uint64, error) {
	id := p.nextFreeID()
	//
	if err := p.encodeNode(id, spec); err != nil {
		return 0, err
	}
	//
	return id, nil
}

// AddNodeWithID adds a fully specified node under a caller-provided
// identifier, failing with ErrDuplicateIdentifier when the identifier is
// already assigned.
func (p *CircuitBuilder) AddNodeWithID(id uint64, spec NodeSpec) error {
	if err := p.claimID(id); err != nil {
		return err
	}
	//
	return p.encodeNode(id, spec)
}

// AddInputNode adds a circuit input of the given data type, with optional
// annotations.
func (p *CircuitBuilder) AddInputNode(inputType uint, annotations ...string) (uint64, error) {
	id, err := p.AddNode(NodeSpec{
		Operation:   ir.PrimitiveOperationInput,
		NumOutputs:  1,
		OutputTypes: []uint{inputType},
		Annotations: strings.Join(annotations, ","),
	})
	//
	if err == nil {
		p.inputIDs = append(p.inputIDs, id)
		p.inputTypes = append(p.inputTypes, inputType)
	}
	//
	return id, err
}

// AddInputNodeWithID adds a circuit input under a caller-provided identifier.
func (p *CircuitBuilder) AddInputNodeWithID(id uint64, inputType uint, annotations ...string) error {
	err := p.AddNodeWithID(id, NodeSpec{
		Operation:   ir.PrimitiveOperationInput,
		NumOutputs:  1,
		OutputTypes: []uint{inputType},
		Annotations: strings.Join(annotations, ","),
	})
	//
	if err == nil {
		p.inputIDs = append(p.inputIDs, id)
		p.inputTypes = append(p.inputTypes, inputType)
	}
	//
	return err
}

// AddOutputNode adds a circuit output of the given data type, reading the
// given producers.
func (p *CircuitBuilder) AddOutputNode(outputType uint, inputIDs []uint64, inputOffsets []uint32) (uint64, error) {
	id, err := p.AddNode(NodeSpec{
		Operation:    ir.PrimitiveOperationOutput,
		InputTypes:   []uint{outputType},
		InputIDs:     inputIDs,
		InputOffsets: inputOffsets,
		NumOutputs:   1,
	})
	//
	if err == nil {
		p.outputIDs = append(p.outputIDs, id)
		p.outputTypes = append(p.outputTypes, outputType)
	}
	//
	return id, err
}

// AddOutputNodeWithID adds a circuit output under a caller-provided
// identifier.
func (p *CircuitBuilder) AddOutputNodeWithID(id uint64, outputType uint, inputIDs []uint64,
	inputOffsets []uint32) error {
	err := p.AddNodeWithID(id, NodeSpec{
		Operation:    ir.PrimitiveOperationOutput,
		InputTypes:   []uint{outputType},
		InputIDs:     inputIDs,
		InputOffsets: inputOffsets,
		NumOutputs:   1,
	})
	//
	if err == nil {
		p.outputIDs = append(p.outputIDs, id)
		p.outputTypes = append(p.outputTypes, outputType)
	}
	//
	return err
}

// AddGate adds a single-output node applying the given operation to the given
// producers.
func (p *CircuitBuilder) AddGate(operation ir.PrimitiveOperation, inputIDs []uint64,
	inputOffsets []uint32) (uint64, error) {
	return p.AddGateWithOutputs(operation, inputIDs, inputOffsets, 1)
}

// AddGateWithID adds a single-output operation node under a caller-provided
// identifier.
func (p *CircuitBuilder) AddGateWithID(id uint64, operation ir.PrimitiveOperation, inputIDs []uint64,
	inputOffsets []uint32) error {
	return p.AddNodeWithID(id, NodeSpec{
		Operation:    operation,
		InputIDs:     inputIDs,
		InputOffsets: inputOffsets,
		NumOutputs:   1,
	})
}

// AddGateWithOutputs adds an operation node with an explicit output count.
func (p *CircuitBuilder) AddGateWithOutputs(operation ir.PrimitiveOperation, inputIDs []uint64,
	inputOffsets []uint32, numOutputs uint32) (uint64, error) {
	return p.AddNode(NodeSpec{
		Operation:    operation,
		InputIDs:     inputIDs,
		InputOffsets: inputOffsets,
		NumOutputs:   numOutputs,
	})
}

// AddSplitNode adds a node splitting the given producer into its bits.  The
// number of outputs is the bit width of the producer's primitive type;
// splitting a type without a defined width fails with ErrTypeMismatch.
func (p *CircuitBuilder) AddSplitNode(inputID uint64, inputType uint) (uint64, error) {
	if inputType >= uint(len(p.typeKinds)) {
		return 0, fmt.Errorf("data type index %d: %w", inputType, core.ErrNotFound)
	}
	//
	width, err := core.TypeBitWidth(p.typeKinds[inputType])
	if err != nil {
		return 0, err
	}
	//
	return p.AddNode(NodeSpec{
		Operation:  ir.PrimitiveOperationSplit,
		InputTypes: []uint{inputType},
		InputIDs:   []uint64{inputID},
		NumOutputs: uint32(width),
	})
}

// AddMergeNode adds a node merging the given bit producers into one value.
func (p *CircuitBuilder) AddMergeNode(inputIDs []uint64, inputOffsets []uint32) (uint64, error) {
	return p.AddNode(NodeSpec{
		Operation:    ir.PrimitiveOperationMerge,
		InputIDs:     inputIDs,
		InputOffsets: inputOffsets,
		NumOutputs:   1,
	})
}

// AddSelectOffsetNode adds a node selecting one output of a multi-output
// producer.
func (p *CircuitBuilder) AddSelectOffsetNode(inputID uint64, inputOffset uint32) (uint64, error) {
	return p.AddNode(NodeSpec{
		Operation:    ir.PrimitiveOperationSelectOffset,
		InputIDs:     []uint64{inputID},
		InputOffsets: []uint32{inputOffset},
		NumOutputs:   1,
	})
}

// AddCustomNode adds a node applying a named custom operation.
func (p *CircuitBuilder) AddCustomNode(name string, inputIDs []uint64, inputOffsets []uint32,
	numOutputs uint32) (uint64, error) {
	return p.AddNode(NodeSpec{
		Operation:           ir.PrimitiveOperationCustom,
		CustomOperationName: name,
		InputIDs:            inputIDs,
		InputOffsets:        inputOffsets,
		NumOutputs:          numOutputs,
	})
}

// AddCallToSubcircuitNode adds a call to a named circuit of the enclosing
// module.
func (p *CircuitBuilder) AddCallToSubcircuitNode(inputIDs []uint64, inputOffsets []uint32,
	subcircuitName string, numOutputs uint32) (uint64, error) {
	id, err := p.AddNode(NodeSpec{
		Operation:      ir.PrimitiveOperationCallSubcircuit,
		SubcircuitName: subcircuitName,
		InputIDs:       inputIDs,
		InputOffsets:   inputOffsets,
		NumOutputs:     numOutputs,
	})
	//
	if err == nil {
		p.callTargets = append(p.callTargets, subcircuitName)
	}
	//
	return id, err
}

// AddConstant adds a constant node holding a scalar of type T, declared under
// the given data type.
func AddConstant[T core.Scalar](p *CircuitBuilder, constantType uint, value T) (uint64, error) {
	payload, err := core.EncodePayload(value)
	if err != nil {
		return 0, err
	}
	//
	return p.AddNode(NodeSpec{
		Operation:   ir.PrimitiveOperationConstant,
		Payload:     payload,
		NumOutputs:  1,
		OutputTypes: []uint{constantType},
	})
}

// AddConstantWithID adds a scalar constant node under a caller-provided
// identifier.
func AddConstantWithID[T core.Scalar](p *CircuitBuilder, id uint64, constantType uint, value T) error {
	payload, err := core.EncodePayload(value)
	if err != nil {
		return err
	}
	//
	return p.AddNodeWithID(id, NodeSpec{
		Operation:   ir.PrimitiveOperationConstant,
		Payload:     payload,
		NumOutputs:  1,
		OutputTypes: []uint{constantType},
	})
}

// AddConstantVector adds a constant node holding a vector of T.
func AddConstantVector[T core.Scalar](p *CircuitBuilder, constantType uint, values []T) (uint64, error) {
	payload, err := core.EncodePayload(values)
	if err != nil {
		return 0, err
	}
	//
	return p.AddNode(NodeSpec{
		Operation:   ir.PrimitiveOperationConstant,
		Payload:     payload,
		NumOutputs:  1,
		OutputTypes: []uint{constantType},
	})
}

// AddConstantMatrix adds a constant node holding a matrix (vector of vectors)
// of T.
func AddConstantMatrix[T core.Scalar](p *CircuitBuilder, constantType uint, values [][]T) (uint64, error) {
	payload, err := core.EncodePayload(values)
	if err != nil {
		return 0, err
	}
	//
	return p.AddNode(NodeSpec{
		Operation:   ir.PrimitiveOperationConstant,
		Payload:     payload,
		NumOutputs:  1,
		OutputTypes: []uint{constantType},
	})
}

// AddConstantBlob adds a constant node holding an opaque byte blob.
func (p *CircuitBuilder) AddConstantBlob(constantType uint, blob []byte) (uint64, error) {
	payload, err := core.EncodePayload(blob)
	if err != nil {
		return 0, err
	}
	//
	return p.AddNode(NodeSpec{
		Operation:   ir.PrimitiveOperationConstant,
		Payload:     payload,
		NumOutputs:  1,
		OutputTypes: []uint{constantType},
	})
}

// CallTargets returns the names of all circuits called from the circuit under
// construction.
func (p *CircuitBuilder) CallTargets() []string {
	return p.callTargets
}

// Finish assembles the serialized circuit.  The first call seals the builder;
// subsequent calls return the same bytes.
func (p *CircuitBuilder) Finish() ([]byte, error) {
	if p.finished != nil {
		return p.finished, nil
	}
	//
	b := p.builder
	//
	nameOffset := b.CreateString(p.name)
	//
	annotationsOffset := flatbuffers.UOffsetT(0)
	if p.annotations != "" {
		annotationsOffset = b.CreateString(p.annotations)
	}
	//
	nodesOffset := flatbuffers.UOffsetT(0)
	if len(p.nodes) > 0 {
		ir.CircuitTableStartNodesVector(b, len(p.nodes))
		for j := len(p.nodes) - 1; j >= 0; j-- {
			b.PrependUOffsetT(p.nodes[j])
		}
		//
		nodesOffset = b.EndVector(len(p.nodes))
	}
	//
	inputsOffset := uint64VectorOffset(b, p.inputIDs, ir.CircuitTableStartInputsVector)
	outputsOffset := uint64VectorOffset(b, p.outputIDs, ir.CircuitTableStartOutputsVector)
	//
	inputTypesOffset, err := p.typeVectorOffset(p.inputTypes, ir.CircuitTableStartInputDatatypesVector)
	if err != nil {
		return nil, err
	}
	//
	outputTypesOffset, err := p.typeVectorOffset(p.outputTypes, ir.CircuitTableStartOutputDatatypesVector)
	if err != nil {
		return nil, err
	}
	//
	ir.CircuitTableStart(b)
	ir.CircuitTableAddName(b, nameOffset)
	ir.CircuitTableAddInputs(b, inputsOffset)
	ir.CircuitTableAddInputDatatypes(b, inputTypesOffset)
	ir.CircuitTableAddOutputs(b, outputsOffset)
	ir.CircuitTableAddOutputDatatypes(b, outputTypesOffset)
	ir.CircuitTableAddNodes(b, nodesOffset)
	ir.CircuitTableAddCircuitAnnotations(b, annotationsOffset)
	b.Finish(ir.CircuitTableEnd(b))
	//
	p.finished = b.FinishedBytes()
	//
	return p.finished, nil
}

// FinishAndWriteToFile assembles the serialized circuit and writes it out.
func (p *CircuitBuilder) FinishAndWriteToFile(path string) error {
	data, err := p.Finish()
	if err != nil {
		return err
	}
	//
	return file.WriteBytes(path, data)
}

// nextFreeID returns the next generated identifier, skipping over identifiers
// claimed by the caller.
func (p *CircuitBuilder) nextFreeID() uint64 {
	for p.customIDs.Contains(p.nextID) {
		p.nextID++
	}
	//
	id := p.nextID
	p.nextID++
	//
	return id
}

// claimID registers a caller-provided identifier, failing when it is already
// assigned (either generated earlier, or claimed earlier).
func (p *CircuitBuilder) claimID(id uint64) error {
	if id < p.nextID || p.customIDs.Contains(id) {
		return fmt.Errorf("identifier %d in circuit %s: %w", id, p.name, core.ErrDuplicateIdentifier)
	}
	//
	p.customIDs.Insert(id)
	//
	return nil
}

// encodeNode serializes one node under the given identifier.
func (p *CircuitBuilder) encodeNode(id uint64, spec NodeSpec) error {
	if p.finished != nil {
		return fmt.Errorf("circuit builder %s already finished: %w", p.name, core.ErrWrongState)
	}
	//
	b := p.builder
	//
	inputTypesOffset, err := p.typeVectorOffset(spec.InputTypes, ir.NodeTableStartInputDatatypesVector)
	if err != nil {
		return err
	}
	//
	outputTypesOffset, err := p.typeVectorOffset(spec.OutputTypes, ir.NodeTableStartOutputDatatypesVector)
	if err != nil {
		return err
	}
	//
	inputIDsOffset := uint64VectorOffset(b, spec.InputIDs, ir.NodeTableStartInputIdentifiersVector)
	//
	inputOffsetsOffset := flatbuffers.UOffsetT(0)
	if len(spec.InputOffsets) > 0 {
		ir.NodeTableStartInputOffsetsVector(b, len(spec.InputOffsets))
		for j := len(spec.InputOffsets) - 1; j >= 0; j-- {
			b.PrependUint32(spec.InputOffsets[j])
		}
		//
		inputOffsetsOffset = b.EndVector(len(spec.InputOffsets))
	}
	//
	customOffset := flatbuffers.UOffsetT(0)
	if spec.CustomOperationName != "" {
		customOffset = b.CreateString(spec.CustomOperationName)
	}
	//
	subcircuitOffset := flatbuffers.UOffsetT(0)
	if spec.SubcircuitName != "" {
		subcircuitOffset = b.CreateString(spec.SubcircuitName)
	}
	//
	payloadOffset := flatbuffers.UOffsetT(0)
	if len(spec.Payload) > 0 {
		payloadOffset = b.CreateByteString(spec.Payload)
	}
	//
	annotationsOffset := flatbuffers.UOffsetT(0)
	if spec.Annotations != "" {
		annotationsOffset = b.CreateString(spec.Annotations)
	}
	//
	ir.NodeTableStart(b)
	ir.NodeTableAddId(b, id)
	ir.NodeTableAddInputDatatypes(b, inputTypesOffset)
	ir.NodeTableAddInputIdentifiers(b, inputIDsOffset)
	ir.NodeTableAddInputOffsets(b, inputOffsetsOffset)
	ir.NodeTableAddOperation(b, spec.Operation)
	ir.NodeTableAddCustomOpName(b, customOffset)
	ir.NodeTableAddSubcircuitName(b, subcircuitOffset)
	ir.NodeTableAddPayload(b, payloadOffset)
	ir.NodeTableAddNumOfOutputs(b, spec.NumOutputs)
	ir.NodeTableAddOutputDatatypes(b, outputTypesOffset)
	ir.NodeTableAddNodeAnnotations(b, annotationsOffset)
	p.nodes = append(p.nodes, ir.NodeTableEnd(b))
	//
	return nil
}

// typeVectorOffset serializes a vector of data type references, resolving
// indices into already-serialized data type tables.
func (p *CircuitBuilder) typeVectorOffset(indices []uint,
	start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT) (flatbuffers.UOffsetT, error) {
	if len(indices) == 0 {
		return 0, nil
	}
	//
	for _, index := range indices {
		if index >= uint(len(p.dataTypes)) {
			return 0, fmt.Errorf("data type index %d in circuit %s: %w", index, p.name, core.ErrNotFound)
		}
	}
	//
	start(p.builder, len(indices))
	//
	for j := len(indices) - 1; j >= 0; j-- {
		p.builder.PrependUOffsetT(p.dataTypes[indices[j]])
	}
	//
	return p.builder.EndVector(len(indices)), nil
}

// uint64VectorOffset serializes a vector of 64-bit identifiers.
func uint64VectorOffset(b *flatbuffers.Builder, ids []uint64,
	start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	if len(ids) == 0 {
		return 0
	}
	//
	start(b, len(ids))
	//
	for j := len(ids) - 1; j >= 0; j-- {
		b.PrependUint64(ids[j])
	}
	//
	return b.EndVector(len(ids))
}
