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

	"github.com/encryptogroup/fuse/pkg/ir"
)

// The buffer views below read directly out of a serialized flatbuffer without
// materializing anything.  They are plain value wrappers around a table
// position inside the shared byte buffer; copying them is free and they stay
// valid for as long as the underlying buffer does.

// DataTypeBufferView is the zero-copy DataType implementation.
type DataTypeBufferView struct {
	table *ir.DataTypeTable
}

// NewDataTypeBufferView wraps a serialized data type table.
func NewDataTypeBufferView(table *ir.DataTypeTable) *DataTypeBufferView {
	return &DataTypeBufferView{table}
}

// PrimitiveType returns the primitive kind of this type.
func (p *DataTypeBufferView) PrimitiveType() ir.PrimitiveType {
	return p.table.PrimitiveType()
}

// PrimitiveTypeName returns the printable name of the primitive kind.
func (p *DataTypeBufferView) PrimitiveTypeName() string {
	return p.table.PrimitiveType().String()
}

// SecurityLevel returns the security level of this type.
func (p *DataTypeBufferView) SecurityLevel() ir.SecurityLevel {
	return p.table.SecurityLevel()
}

// SecurityLevelName returns the printable name of the security level.
func (p *DataTypeBufferView) SecurityLevelName() string {
	return p.table.SecurityLevel().String()
}

// IsPrimitive checks whether this type denotes a scalar.
func (p *DataTypeBufferView) IsPrimitive() bool {
	return isScalarShape(p.Shape())
}

// IsSecure checks whether this type is secret-shared.
func (p *DataTypeBufferView) IsSecure() bool {
	return p.table.SecurityLevel() == ir.SecurityLevelSecure
}

// Shape returns the ordered dimensions of this type.
func (p *DataTypeBufferView) Shape() []int64 {
	shape := make([]int64, p.table.ShapeLength())
	for i := range shape {
		shape[i] = p.table.Shape(i)
	}
	//
	return shape
}

// Annotations returns the free-form annotation string.
func (p *DataTypeBufferView) Annotations() string {
	return string(p.table.DataTypeAnnotations())
}

// AttributeValue extracts a named attribute from the annotations.
func (p *DataTypeBufferView) AttributeValue(attribute string) string {
	return AttributeValue(p.Annotations(), attribute)
}

// NodeBufferView is the zero-copy Node implementation.
type NodeBufferView struct {
	table *ir.NodeTable
}

// NewNodeBufferView wraps a serialized node table.
func NewNodeBufferView(table *ir.NodeTable) *NodeBufferView {
	return &NodeBufferView{table}
}

// ID returns the node identifier.
func (p *NodeBufferView) ID() uint64 {
	return p.table.Id()
}

// Operation returns the primitive operation of this node.
func (p *NodeBufferView) Operation() ir.PrimitiveOperation {
	return p.table.Operation()
}

// OperationName returns the printable name of the operation.
func (p *NodeBufferView) OperationName() string {
	return p.table.Operation().String()
}

// IsInput checks whether this is an input node.
func (p *NodeBufferView) IsInput() bool {
	return p.Operation() == ir.PrimitiveOperationInput
}

// IsOutput checks whether this is an output node.
func (p *NodeBufferView) IsOutput() bool {
	return p.Operation() == ir.PrimitiveOperationOutput
}

// IsConstant checks whether this node carries a constant payload.
func (p *NodeBufferView) IsConstant() bool {
	return p.Operation() == ir.PrimitiveOperationConstant
}

// IsUnary checks whether this node applies a unary operation.
func (p *NodeBufferView) IsUnary() bool {
	return IsUnaryOperation(p.Operation())
}

// IsBinary checks whether this node applies a binary operation.
func (p *NodeBufferView) IsBinary() bool {
	return IsBinaryOperation(p.Operation())
}

// IsSubcircuitCall checks whether this node calls another circuit.
func (p *NodeBufferView) IsSubcircuitCall() bool {
	return p.Operation() == ir.PrimitiveOperationCallSubcircuit
}

// IsSplit checks whether this node splits a value into its bits.
func (p *NodeBufferView) IsSplit() bool {
	return p.Operation() == ir.PrimitiveOperationSplit
}

// IsMerge checks whether this node merges bits into a value.
func (p *NodeBufferView) IsMerge() bool {
	return p.Operation() == ir.PrimitiveOperationMerge
}

// IsLoop checks whether this node is a loop construct.
func (p *NodeBufferView) IsLoop() bool {
	return p.Operation() == ir.PrimitiveOperationLoop
}

// IsCustom checks whether this node applies a custom operation.
func (p *NodeBufferView) IsCustom() bool {
	return p.Operation() == ir.PrimitiveOperationCustom
}

// HasBooleanOperator checks whether the operation is a boolean gate.
func (p *NodeBufferView) HasBooleanOperator() bool {
	return IsBooleanOperation(p.Operation())
}

// HasArithmeticOperator checks whether the operation is arithmetic.
func (p *NodeBufferView) HasArithmeticOperator() bool {
	return IsArithmeticOperation(p.Operation())
}

// HasComparisonOperator checks whether the operation is a comparison.
func (p *NodeBufferView) HasComparisonOperator() bool {
	return IsComparisonOperation(p.Operation())
}

// UsesInputOffsets checks whether an explicit offset list is present.
func (p *NodeBufferView) UsesInputOffsets() bool {
	return p.table.InputOffsetsLength() > 0
}

// InputIDs returns the ordered identifiers of the producer nodes.
func (p *NodeBufferView) InputIDs() []uint64 {
	ids := make([]uint64, p.table.InputIdentifiersLength())
	for i := range ids {
		ids[i] = p.table.InputIdentifiers(i)
	}
	//
	return ids
}

// InputOffsets returns the parallel list of producer output offsets.
func (p *NodeBufferView) InputOffsets() []uint32 {
	n := p.table.InputOffsetsLength()
	if n == 0 {
		return nil
	}
	//
	offsets := make([]uint32, n)
	for i := range offsets {
		offsets[i] = p.table.InputOffsets(i)
	}
	//
	return offsets
}

// NumInputs returns the number of input ports.
func (p *NodeBufferView) NumInputs() uint {
	return uint(p.table.InputIdentifiersLength())
}

// NumOutputs returns the number of output ports.
func (p *NodeBufferView) NumOutputs() uint {
	return uint(p.table.NumOfOutputs())
}

// InputTypeAt returns the declared type of the given input port.
func (p *NodeBufferView) InputTypeAt(i uint) DataType {
	var table ir.DataTypeTable
	if !p.table.InputDatatypes(&table, int(i)) {
		return nil
	}
	//
	return NewDataTypeBufferView(&table)
}

// InputTypes returns the declared types of all input ports.
func (p *NodeBufferView) InputTypes() []DataType {
	types := make([]DataType, p.table.InputDatatypesLength())
	for i := range types {
		types[i] = p.InputTypeAt(uint(i))
	}
	//
	return types
}

// OutputTypeAt returns the declared type of the given output port.
func (p *NodeBufferView) OutputTypeAt(i uint) DataType {
	var table ir.DataTypeTable
	if !p.table.OutputDatatypes(&table, int(i)) {
		return nil
	}
	//
	return NewDataTypeBufferView(&table)
}

// OutputTypes returns the declared types of all output ports.
func (p *NodeBufferView) OutputTypes() []DataType {
	types := make([]DataType, p.table.OutputDatatypesLength())
	for i := range types {
		types[i] = p.OutputTypeAt(uint(i))
	}
	//
	return types
}

// CustomOperationName returns the registered name for Custom nodes.
func (p *NodeBufferView) CustomOperationName() string {
	return string(p.table.CustomOpName())
}

// SubcircuitName returns the callee name for CallSubcircuit nodes.
func (p *NodeBufferView) SubcircuitName() string {
	return string(p.table.SubcircuitName())
}

// Payload returns the raw constant payload bytes.
func (p *NodeBufferView) Payload() []byte {
	return p.table.PayloadBytes()
}

// Annotations returns the free-form annotation string.
func (p *NodeBufferView) Annotations() string {
	return string(p.table.NodeAnnotations())
}

// AttributeValue extracts a named attribute from the annotations.
func (p *NodeBufferView) AttributeValue(attribute string) string {
	return AttributeValue(p.Annotations(), attribute)
}

// CircuitBufferView is the zero-copy Circuit implementation.
type CircuitBufferView struct {
	table *ir.CircuitTable
}

// NewCircuitBufferView wraps a serialized circuit table.
func NewCircuitBufferView(table *ir.CircuitTable) *CircuitBufferView {
	return &CircuitBufferView{table}
}

// NewCircuitBufferViewFromBytes decodes a circuit view directly from a
// serialized circuit buffer.
func NewCircuitBufferViewFromBytes(buf []byte) (*CircuitBufferView, error) {
	if err := checkRootBuffer(buf); err != nil {
		return nil, err
	}
	//
	return &CircuitBufferView{ir.GetRootAsCircuitTable(buf, 0)}, nil
}

// Name returns the circuit name.
func (p *CircuitBufferView) Name() string {
	return string(p.table.Name())
}

// InputIDs returns the identifiers of the designated input nodes.
func (p *CircuitBufferView) InputIDs() []uint64 {
	ids := make([]uint64, p.table.InputsLength())
	for i := range ids {
		ids[i] = p.table.Inputs(i)
	}
	//
	return ids
}

// OutputIDs returns the identifiers of the designated output nodes.
func (p *CircuitBufferView) OutputIDs() []uint64 {
	ids := make([]uint64, p.table.OutputsLength())
	for i := range ids {
		ids[i] = p.table.Outputs(i)
	}
	//
	return ids
}

// InputTypes returns the declared types of the circuit inputs.
func (p *CircuitBufferView) InputTypes() []DataType {
	types := make([]DataType, p.table.InputDatatypesLength())
	//
	for i := range types {
		var table ir.DataTypeTable
		if p.table.InputDatatypes(&table, i) {
			types[i] = NewDataTypeBufferView(&table)
		}
	}
	//
	return types
}

// OutputTypes returns the declared types of the circuit outputs.
func (p *CircuitBufferView) OutputTypes() []DataType {
	types := make([]DataType, p.table.OutputDatatypesLength())
	//
	for i := range types {
		var table ir.DataTypeTable
		if p.table.OutputDatatypes(&table, i) {
			types[i] = NewDataTypeBufferView(&table)
		}
	}
	//
	return types
}

// NumInputs returns the number of circuit inputs.
func (p *CircuitBufferView) NumInputs() uint {
	return uint(p.table.InputsLength())
}

// NumOutputs returns the number of circuit outputs.
func (p *CircuitBufferView) NumOutputs() uint {
	return uint(p.table.OutputsLength())
}

// NumNodes returns the number of nodes in this circuit.
func (p *CircuitBufferView) NumNodes() uint {
	return uint(p.table.NodesLength())
}

// NodeWithID looks up a node by identifier.
func (p *CircuitBufferView) NodeWithID(id uint64) (Node, error) {
	for i := 0; i < p.table.NodesLength(); i++ {
		var table ir.NodeTable
		if p.table.Nodes(&table, i) && table.Id() == id {
			return NewNodeBufferView(&table), nil
		}
	}
	//
	return nil, fmt.Errorf("node %d in circuit %s: %w", id, p.Name(), ErrNotFound)
}

// NextID returns a fresh identifier greater than every assigned identifier.
func (p *CircuitBufferView) NextID() uint64 {
	var next uint64
	//
	for i := 0; i < p.table.NodesLength(); i++ {
		var table ir.NodeTable
		if p.table.Nodes(&table, i) && table.Id() >= next {
			next = table.Id() + 1
		}
	}
	//
	return next
}

// Traverse visits every node in topological order.
func (p *CircuitBufferView) Traverse(visit func(Node)) {
	for i := 0; i < p.table.NodesLength(); i++ {
		var table ir.NodeTable
		if p.table.Nodes(&table, i) {
			visit(NewNodeBufferView(&table))
		}
	}
}

// Annotations returns the free-form annotation string.
func (p *CircuitBufferView) Annotations() string {
	return string(p.table.CircuitAnnotations())
}

// AttributeValue extracts a named attribute from the annotations.
func (p *CircuitBufferView) AttributeValue(attribute string) string {
	return AttributeValue(p.Annotations(), attribute)
}

// ModuleBufferView is the zero-copy Module implementation.
type ModuleBufferView struct {
	table *ir.ModuleTable
}

// NewModuleBufferViewFromBytes decodes a module view directly from a
// serialized module buffer.
func NewModuleBufferViewFromBytes(buf []byte) (*ModuleBufferView, error) {
	if err := checkRootBuffer(buf); err != nil {
		return nil, err
	}
	//
	return &ModuleBufferView{ir.GetRootAsModuleTable(buf, 0)}, nil
}

// EntryName returns the name of the designated entry circuit.
func (p *ModuleBufferView) EntryName() string {
	return string(p.table.EntryPoint())
}

// CircuitNames enumerates the names of all contained circuits.
func (p *ModuleBufferView) CircuitNames() []string {
	names := make([]string, 0, p.table.CircuitsLength())
	//
	for i := 0; i < p.table.CircuitsLength(); i++ {
		if circuit, err := p.circuitAt(i); err == nil {
			names = append(names, circuit.Name())
		}
	}
	//
	return names
}

// CircuitWithName looks up a circuit by name.
func (p *ModuleBufferView) CircuitWithName(name string) (Circuit, error) {
	for i := 0; i < p.table.CircuitsLength(); i++ {
		circuit, err := p.circuitAt(i)
		if err != nil {
			return nil, err
		}
		//
		if circuit.Name() == name {
			return circuit, nil
		}
	}
	//
	return nil, fmt.Errorf("circuit %s: %w", name, ErrNotFound)
}

// EntryCircuit resolves the designated entry circuit.
func (p *ModuleBufferView) EntryCircuit() (Circuit, error) {
	return p.CircuitWithName(p.EntryName())
}

// Annotations returns the free-form annotation string.
func (p *ModuleBufferView) Annotations() string {
	return string(p.table.ModuleAnnotations())
}

// AttributeValue extracts a named attribute from the annotations.
func (p *ModuleBufferView) AttributeValue(attribute string) string {
	return AttributeValue(p.Annotations(), attribute)
}

// circuitAt decodes the nested circuit buffer at a given index.
func (p *ModuleBufferView) circuitAt(i int) (*CircuitBufferView, error) {
	var table ir.CircuitTableBuffer
	if !p.table.Circuits(&table, i) {
		return nil, fmt.Errorf("circuit buffer %d: %w", i, ErrDecode)
	}
	//
	return NewCircuitBufferViewFromBytes(table.CircuitBufferBytes())
}

// checkRootBuffer performs the cheap structural sanity checks applied before
// interpreting bytes as a flatbuffer: the root offset must exist and point
// inside the buffer.
func checkRootBuffer(buf []byte) error {
	if len(buf) < 8 {
		return fmt.Errorf("buffer of %d bytes: %w", len(buf), ErrDecode)
	}
	//
	root := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	if root < 4 || uint64(root) >= uint64(len(buf)) {
		return fmt.Errorf("root table offset %d out of bounds: %w", root, ErrDecode)
	}
	//
	return nil
}

// isScalarShape checks whether a shape denotes a scalar (empty, or no
// dimension greater than one).
func isScalarShape(shape []int64) bool {
	for _, dim := range shape {
		if dim > 1 {
			return false
		}
	}
	//
	return true
}
