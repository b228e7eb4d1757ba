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
package core

import (
	"fmt"
	"slices"

	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/encryptogroup/fuse/pkg/util/collection/set"
)

// The object views below wrap the materialized object tree of an unpacked
// container.  They implement the same read-only interfaces as the buffer
// views and additionally expose mutation.  A view stays valid for as long as
// the wrapped object does; handing out a mutable view is the caller's promise
// that no other view of the same container is in use.

// DataTypeObject is the mutable DataType implementation.
type DataTypeObject struct {
	object *ir.DataTypeTableT
}

// NewDataTypeObject wraps a materialized data type.
func NewDataTypeObject(object *ir.DataTypeTableT) *DataTypeObject {
	return &DataTypeObject{object}
}

// PrimitiveType returns the primitive kind of this type.
func (p *DataTypeObject) PrimitiveType() ir.PrimitiveType {
	return p.object.PrimitiveType
}

// PrimitiveTypeName returns the printable name of the primitive kind.
func (p *DataTypeObject) PrimitiveTypeName() string {
	return p.object.PrimitiveType.String()
}

// SecurityLevel returns the security level of this type.
func (p *DataTypeObject) SecurityLevel() ir.SecurityLevel {
	return p.object.SecurityLevel
}

// SecurityLevelName returns the printable name of the security level.
func (p *DataTypeObject) SecurityLevelName() string {
	return p.object.SecurityLevel.String()
}

// IsPrimitive checks whether this type denotes a scalar.
func (p *DataTypeObject) IsPrimitive() bool {
	return isScalarShape(p.object.Shape)
}

// IsSecure checks whether this type is secret-shared.
func (p *DataTypeObject) IsSecure() bool {
	return p.object.SecurityLevel == ir.SecurityLevelSecure
}

// Shape returns the ordered dimensions of this type.
func (p *DataTypeObject) Shape() []int64 {
	return p.object.Shape
}

// Annotations returns the free-form annotation string.
func (p *DataTypeObject) Annotations() string {
	return p.object.DataTypeAnnotations
}

// AttributeValue extracts a named attribute from the annotations.
func (p *DataTypeObject) AttributeValue(attribute string) string {
	return AttributeValue(p.object.DataTypeAnnotations, attribute)
}

// SetPrimitiveType updates the primitive kind.
func (p *DataTypeObject) SetPrimitiveType(primitive ir.PrimitiveType) {
	p.object.PrimitiveType = primitive
}

// SetSecurityLevel updates the security level.
func (p *DataTypeObject) SetSecurityLevel(level ir.SecurityLevel) {
	p.object.SecurityLevel = level
}

// SetShape updates the shape.
func (p *DataTypeObject) SetShape(shape []int64) {
	p.object.Shape = slices.Clone(shape)
}

// SetAnnotations replaces the annotation string.
func (p *DataTypeObject) SetAnnotations(annotations string) {
	p.object.DataTypeAnnotations = annotations
}

// SetAttributeValue binds a named attribute in the annotations, preserving
// all other tokens.
func (p *DataTypeObject) SetAttributeValue(attribute, value string) {
	p.object.DataTypeAnnotations = SetAttributeValue(p.object.DataTypeAnnotations, attribute, value)
}

// NodeObject is the mutable Node implementation.
type NodeObject struct {
	object *ir.NodeTableT
}

// NewNodeObject wraps a materialized node.
func NewNodeObject(object *ir.NodeTableT) *NodeObject {
	return &NodeObject{object}
}

// ID returns the node identifier.
func (p *NodeObject) ID() uint64 {
	return p.object.Id
}

// Operation returns the primitive operation of this node.
func (p *NodeObject) Operation() ir.PrimitiveOperation {
	return p.object.Operation
}

// OperationName returns the printable name of the operation.
func (p *NodeObject) OperationName() string {
	return p.object.Operation.String()
}

// IsInput checks whether this is an input node.
func (p *NodeObject) IsInput() bool {
	return p.object.Operation == ir.PrimitiveOperationInput
}

// IsOutput checks whether this is an output node.
func (p *NodeObject) IsOutput() bool {
	return p.object.Operation == ir.PrimitiveOperationOutput
}

// IsConstant checks whether this node carries a constant payload.
func (p *NodeObject) IsConstant() bool {
	return p.object.Operation == ir.PrimitiveOperationConstant
}

// IsUnary checks whether this node applies a unary operation.
func (p *NodeObject) IsUnary() bool {
	return IsUnaryOperation(p.object.Operation)
}

// IsBinary checks whether this node applies a binary operation.
func (p *NodeObject) IsBinary() bool {
	return IsBinaryOperation(p.object.Operation)
}

// IsSubcircuitCall checks whether this node calls another circuit.
func (p *NodeObject) IsSubcircuitCall() bool {
	return p.object.Operation == ir.PrimitiveOperationCallSubcircuit
}

// IsSplit checks whether this node splits a value into its bits.
func (p *NodeObject) IsSplit() bool {
	return p.object.Operation == ir.PrimitiveOperationSplit
}

// IsMerge checks whether this node merges bits into a value.
func (p *NodeObject) IsMerge() bool {
	return p.object.Operation == ir.PrimitiveOperationMerge
}

// IsLoop checks whether this node is a loop construct.
func (p *NodeObject) IsLoop() bool {
	return p.object.Operation == ir.PrimitiveOperationLoop
}

// IsCustom checks whether this node applies a custom operation.
func (p *NodeObject) IsCustom() bool {
	return p.object.Operation == ir.PrimitiveOperationCustom
}

// HasBooleanOperator checks whether the operation is a boolean gate.
func (p *NodeObject) HasBooleanOperator() bool {
	return IsBooleanOperation(p.object.Operation)
}

// HasArithmeticOperator checks whether the operation is arithmetic.
func (p *NodeObject) HasArithmeticOperator() bool {
	return IsArithmeticOperation(p.object.Operation)
}

// HasComparisonOperator checks whether the operation is a comparison.
func (p *NodeObject) HasComparisonOperator() bool {
	return IsComparisonOperation(p.object.Operation)
}

// UsesInputOffsets checks whether an explicit offset list is present.
func (p *NodeObject) UsesInputOffsets() bool {
	return len(p.object.InputOffsets) > 0
}

// InputIDs returns the ordered identifiers of the producer nodes.
func (p *NodeObject) InputIDs() []uint64 {
	return p.object.InputIdentifiers
}

// InputOffsets returns the parallel list of producer output offsets.
func (p *NodeObject) InputOffsets() []uint32 {
	return p.object.InputOffsets
}

// NumInputs returns the number of input ports.
func (p *NodeObject) NumInputs() uint {
	return uint(len(p.object.InputIdentifiers))
}

// NumOutputs returns the number of output ports.
func (p *NodeObject) NumOutputs() uint {
	return uint(p.object.NumOfOutputs)
}

// InputTypeAt returns the declared type of the given input port.
func (p *NodeObject) InputTypeAt(i uint) DataType {
	if i >= uint(len(p.object.InputDatatypes)) {
		return nil
	}
	//
	return NewDataTypeObject(p.object.InputDatatypes[i])
}

// InputTypes returns the declared types of all input ports.
func (p *NodeObject) InputTypes() []DataType {
	types := make([]DataType, len(p.object.InputDatatypes))
	for i, t := range p.object.InputDatatypes {
		types[i] = NewDataTypeObject(t)
	}
	//
	return types
}

// OutputTypeAt returns the declared type of the given output port.
func (p *NodeObject) OutputTypeAt(i uint) DataType {
	if i >= uint(len(p.object.OutputDatatypes)) {
		return nil
	}
	//
	return NewDataTypeObject(p.object.OutputDatatypes[i])
}

// OutputTypes returns the declared types of all output ports.
func (p *NodeObject) OutputTypes() []DataType {
	types := make([]DataType, len(p.object.OutputDatatypes))
	for i, t := range p.object.OutputDatatypes {
		types[i] = NewDataTypeObject(t)
	}
	//
	return types
}

// CustomOperationName returns the registered name for Custom nodes.
func (p *NodeObject) CustomOperationName() string {
	return p.object.CustomOpName
}

// SubcircuitName returns the callee name for CallSubcircuit nodes.
func (p *NodeObject) SubcircuitName() string {
	return p.object.SubcircuitName
}

// Payload returns the raw constant payload bytes.
func (p *NodeObject) Payload() []byte {
	return p.object.Payload
}

// Annotations returns the free-form annotation string.
func (p *NodeObject) Annotations() string {
	return p.object.NodeAnnotations
}

// AttributeValue extracts a named attribute from the annotations.
func (p *NodeObject) AttributeValue(attribute string) string {
	return AttributeValue(p.object.NodeAnnotations, attribute)
}

// SetOperation updates the primitive operation.
func (p *NodeObject) SetOperation(op ir.PrimitiveOperation) {
	p.object.Operation = op
}

// SetCustomOperationName updates the custom operation name.
func (p *NodeObject) SetCustomOperationName(name string) {
	p.object.CustomOpName = name
}

// SetSubcircuitName updates the callee name.
func (p *NodeObject) SetSubcircuitName(name string) {
	p.object.SubcircuitName = name
}

// SetInputIDs replaces the producer identifier list.
func (p *NodeObject) SetInputIDs(ids []uint64) {
	p.object.InputIdentifiers = slices.Clone(ids)
}

// SetInputOffsets replaces the producer offset list.
func (p *NodeObject) SetInputOffsets(offsets []uint32) {
	p.object.InputOffsets = slices.Clone(offsets)
}

// SetNumOutputs updates the number of output ports.
func (p *NodeObject) SetNumOutputs(n uint32) {
	p.object.NumOfOutputs = n
}

// SetInputTypes replaces the declared input port types.
func (p *NodeObject) SetInputTypes(types []*ir.DataTypeTableT) {
	p.object.InputDatatypes = slices.Clone(types)
}

// SetOutputTypes replaces the declared output port types.
func (p *NodeObject) SetOutputTypes(types []*ir.DataTypeTableT) {
	p.object.OutputDatatypes = slices.Clone(types)
}

// SetPayload replaces the raw constant payload bytes.
func (p *NodeObject) SetPayload(payload []byte) {
	p.object.Payload = payload
}

// SetAnnotations replaces the annotation string.
func (p *NodeObject) SetAnnotations(annotations string) {
	p.object.NodeAnnotations = annotations
}

// SetAttributeValue binds a named attribute in the annotations.
func (p *NodeObject) SetAttributeValue(attribute, value string) {
	p.object.NodeAnnotations = SetAttributeValue(p.object.NodeAnnotations, attribute, value)
}

// ReplaceInputBy rewires one input edge from (prevProducer, prevOffset) to
// (newProducer, newOffset).  When the node has no offset list, one is
// materialized, initialized to zero for all inputs, before the update.
func (p *NodeObject) ReplaceInputBy(prevProducer, newProducer uint64, prevOffset, newOffset uint32) {
	if len(p.object.InputOffsets) == 0 {
		p.object.InputOffsets = make([]uint32, len(p.object.InputIdentifiers))
	}
	//
	for i, id := range p.object.InputIdentifiers {
		if id == prevProducer && p.object.InputOffsets[i] == prevOffset {
			p.object.InputIdentifiers[i] = newProducer
			p.object.InputOffsets[i] = newOffset
		}
	}
}

// CircuitObject is the mutable Circuit implementation.
type CircuitObject struct {
	object *ir.CircuitTableT
}

// NewCircuitObject wraps a materialized circuit.
func NewCircuitObject(object *ir.CircuitTableT) *CircuitObject {
	return &CircuitObject{object}
}

// Name returns the circuit name.
func (p *CircuitObject) Name() string {
	return p.object.Name
}

// InputIDs returns the identifiers of the designated input nodes.
func (p *CircuitObject) InputIDs() []uint64 {
	return p.object.Inputs
}

// OutputIDs returns the identifiers of the designated output nodes.
func (p *CircuitObject) OutputIDs() []uint64 {
	return p.object.Outputs
}

// InputTypes returns the declared types of the circuit inputs.
func (p *CircuitObject) InputTypes() []DataType {
	types := make([]DataType, len(p.object.InputDatatypes))
	for i, t := range p.object.InputDatatypes {
		types[i] = NewDataTypeObject(t)
	}
	//
	return types
}

// OutputTypes returns the declared types of the circuit outputs.
func (p *CircuitObject) OutputTypes() []DataType {
	types := make([]DataType, len(p.object.OutputDatatypes))
	for i, t := range p.object.OutputDatatypes {
		types[i] = NewDataTypeObject(t)
	}
	//
	return types
}

// NumInputs returns the number of circuit inputs.
func (p *CircuitObject) NumInputs() uint {
	return uint(len(p.object.Inputs))
}

// NumOutputs returns the number of circuit outputs.
func (p *CircuitObject) NumOutputs() uint {
	return uint(len(p.object.Outputs))
}

// NumNodes returns the number of nodes in this circuit.
func (p *CircuitObject) NumNodes() uint {
	return uint(len(p.object.Nodes))
}

// NodeWithID looks up a node by identifier.
func (p *CircuitObject) NodeWithID(id uint64) (Node, error) {
	return p.MutableNodeWithID(id)
}

// MutableNodeWithID looks up a node by identifier, returning its mutable
// wrapper.
func (p *CircuitObject) MutableNodeWithID(id uint64) (*NodeObject, error) {
	for _, node := range p.object.Nodes {
		if node.Id == id {
			return NewNodeObject(node), nil
		}
	}
	//
	return nil, fmt.Errorf("node %d in circuit %s: %w", id, p.object.Name, ErrNotFound)
}

// NextID returns a fresh identifier greater than every assigned identifier.
func (p *CircuitObject) NextID() uint64 {
	var next uint64
	//
	for _, node := range p.object.Nodes {
		if node.Id >= next {
			next = node.Id + 1
		}
	}
	//
	return next
}

// Traverse visits every node in topological order.
func (p *CircuitObject) Traverse(visit func(Node)) {
	for _, node := range p.object.Nodes {
		visit(NewNodeObject(node))
	}
}

// Annotations returns the free-form annotation string.
func (p *CircuitObject) Annotations() string {
	return p.object.CircuitAnnotations
}

// AttributeValue extracts a named attribute from the annotations.
func (p *CircuitObject) AttributeValue(attribute string) string {
	return AttributeValue(p.object.CircuitAnnotations, attribute)
}

// SetName updates the circuit name.
func (p *CircuitObject) SetName(name string) {
	p.object.Name = name
}

// SetAnnotations replaces the annotation string.
func (p *CircuitObject) SetAnnotations(annotations string) {
	p.object.CircuitAnnotations = annotations
}

// SetAttributeValue binds a named attribute in the annotations.
func (p *CircuitObject) SetAttributeValue(attribute, value string) {
	p.object.CircuitAnnotations = SetAttributeValue(p.object.CircuitAnnotations, attribute, value)
}

// SetInputNodeIDs replaces the designated input node list.
func (p *CircuitObject) SetInputNodeIDs(ids []uint64) {
	p.object.Inputs = slices.Clone(ids)
}

// SetOutputNodeIDs replaces the designated output node list.
func (p *CircuitObject) SetOutputNodeIDs(ids []uint64) {
	p.object.Outputs = slices.Clone(ids)
}

// AddNode appends a fresh node (with the next free identifier) at the back of
// the node sequence and returns its mutable wrapper.
func (p *CircuitObject) AddNode() *NodeObject {
	node := &ir.NodeTableT{Id: p.NextID()}
	p.object.Nodes = append(p.object.Nodes, node)
	//
	return NewNodeObject(node)
}

// AddNodeAt inserts a fresh node (with the next free identifier) at the given
// position in the node sequence.  A negative position appends.
func (p *CircuitObject) AddNodeAt(position int) *NodeObject {
	if position < 0 || position >= len(p.object.Nodes) {
		return p.AddNode()
	}
	//
	node := &ir.NodeTableT{Id: p.NextID()}
	p.object.Nodes = slices.Insert(p.object.Nodes, position, node)
	//
	return NewNodeObject(node)
}

// RemoveNode removes the node with the given identifier (if present).
func (p *CircuitObject) RemoveNode(id uint64) {
	p.object.Nodes = slices.DeleteFunc(p.object.Nodes, func(node *ir.NodeTableT) bool {
		return node.Id == id
	})
}

// RemoveNodes removes every node whose identifier is in the given set.
func (p *CircuitObject) RemoveNodes(ids *set.SortedSet[uint64]) {
	p.object.Nodes = slices.DeleteFunc(p.object.Nodes, func(node *ir.NodeTableT) bool {
		return ids.Contains(node.Id)
	})
}

// RemoveNodesNotContainedIn removes every node whose identifier is not in the
// given set.
func (p *CircuitObject) RemoveNodesNotContainedIn(ids *set.SortedSet[uint64]) {
	p.object.Nodes = slices.DeleteFunc(p.object.Nodes, func(node *ir.NodeTableT) bool {
		return !ids.Contains(node.Id)
	})
}

// ModuleObject is the mutable Module implementation.  Circuits inside a
// freshly unpacked module are still individual serialized buffers; the first
// mutable access to a named circuit transparently unpacks it and removes the
// corresponding buffer, so repeated accesses return the same object.
type ModuleObject struct {
	object *ir.ModuleTableT
	// unpacked circuits, keyed by name
	circuits map[string]*ir.CircuitTableT
	// names in their original module order, across both representations
	order []string
}

// NewModuleObject wraps a materialized module.
func NewModuleObject(object *ir.ModuleTableT) (*ModuleObject, error) {
	p := &ModuleObject{object, make(map[string]*ir.CircuitTableT), nil}
	//
	for i, buffer := range object.Circuits {
		view, err := NewCircuitBufferViewFromBytes(buffer.CircuitBuffer)
		if err != nil {
			return nil, fmt.Errorf("circuit buffer %d: %w", i, ErrDecode)
		}
		//
		p.order = append(p.order, view.Name())
	}
	//
	return p, nil
}

// EntryName returns the name of the designated entry circuit.
func (p *ModuleObject) EntryName() string {
	return p.object.EntryPoint
}

// CircuitNames enumerates the names of all contained circuits.
func (p *ModuleObject) CircuitNames() []string {
	return slices.Clone(p.order)
}

// CircuitWithName looks up a circuit by name, returning a read-only view.
// Circuits not yet unpacked are viewed directly over their buffer.
func (p *ModuleObject) CircuitWithName(name string) (Circuit, error) {
	if circuit, ok := p.circuits[name]; ok {
		return NewCircuitObject(circuit), nil
	}
	//
	for _, buffer := range p.object.Circuits {
		view, err := NewCircuitBufferViewFromBytes(buffer.CircuitBuffer)
		if err != nil {
			return nil, err
		}
		//
		if view.Name() == name {
			return view, nil
		}
	}
	//
	return nil, fmt.Errorf("circuit %s: %w", name, ErrNotFound)
}

// EntryCircuit resolves the designated entry circuit.
func (p *ModuleObject) EntryCircuit() (Circuit, error) {
	return p.CircuitWithName(p.object.EntryPoint)
}

// MutableCircuitWithName looks up a circuit by name, unpacking it on first
// access.
func (p *ModuleObject) MutableCircuitWithName(name string) (*CircuitObject, error) {
	if circuit, ok := p.circuits[name]; ok {
		return NewCircuitObject(circuit), nil
	}
	//
	for i, buffer := range p.object.Circuits {
		view, err := NewCircuitBufferViewFromBytes(buffer.CircuitBuffer)
		if err != nil {
			return nil, err
		}
		//
		if view.Name() == name {
			// Unpack and discard the buffer.
			circuit := ir.GetRootAsCircuitTable(buffer.CircuitBuffer, 0).UnPack()
			p.object.Circuits = slices.Delete(p.object.Circuits, i, i+1)
			p.circuits[name] = circuit
			//
			return NewCircuitObject(circuit), nil
		}
	}
	//
	return nil, fmt.Errorf("circuit %s: %w", name, ErrNotFound)
}

// MutableEntryCircuit resolves the entry circuit for mutation.
func (p *ModuleObject) MutableEntryCircuit() (*CircuitObject, error) {
	return p.MutableCircuitWithName(p.object.EntryPoint)
}

// Annotations returns the free-form annotation string.
func (p *ModuleObject) Annotations() string {
	return p.object.ModuleAnnotations
}

// AttributeValue extracts a named attribute from the annotations.
func (p *ModuleObject) AttributeValue(attribute string) string {
	return AttributeValue(p.object.ModuleAnnotations, attribute)
}

// SetEntryName designates a new entry circuit.
func (p *ModuleObject) SetEntryName(name string) {
	p.object.EntryPoint = name
}

// SetAnnotations replaces the annotation string.
func (p *ModuleObject) SetAnnotations(annotations string) {
	p.object.ModuleAnnotations = annotations
}

// SetAttributeValue binds a named attribute in the annotations.
func (p *ModuleObject) SetAttributeValue(attribute, value string) {
	p.object.ModuleAnnotations = SetAttributeValue(p.object.ModuleAnnotations, attribute, value)
}

// RemoveCircuit removes a circuit by name (if present).
func (p *ModuleObject) RemoveCircuit(name string) {
	delete(p.circuits, name)
	//
	p.object.Circuits = slices.DeleteFunc(p.object.Circuits, func(buffer *ir.CircuitTableBufferT) bool {
		view, err := NewCircuitBufferViewFromBytes(buffer.CircuitBuffer)
		return err == nil && view.Name() == name
	})
	//
	p.order = slices.DeleteFunc(p.order, func(n string) bool { return n == name })
}

// repack serializes every unpacked circuit back into its buffer form,
// restoring the original circuit order where possible.
func (p *ModuleObject) repack() *ir.ModuleTableT {
	if len(p.circuits) == 0 {
		return p.object
	}
	//
	packed := make(map[string]*ir.CircuitTableBufferT, len(p.order))
	//
	for _, buffer := range p.object.Circuits {
		if view, err := NewCircuitBufferViewFromBytes(buffer.CircuitBuffer); err == nil {
			packed[view.Name()] = buffer
		}
	}
	//
	for name, circuit := range p.circuits {
		packed[name] = &ir.CircuitTableBufferT{CircuitBuffer: packCircuitTable(circuit)}
	}
	//
	buffers := make([]*ir.CircuitTableBufferT, 0, len(p.order))
	for _, name := range p.order {
		if buffer, ok := packed[name]; ok {
			buffers = append(buffers, buffer)
		}
	}
	//
	return &ir.ModuleTableT{
		EntryPoint:        p.object.EntryPoint,
		Circuits:          buffers,
		ModuleAnnotations: p.object.ModuleAnnotations,
	}
}
