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

// Package core defines the in-memory representation of FUSE circuits and
// modules.  The same logical IR is visible through two view kinds: a zero-copy
// view over a serialized flatbuffer ("buffer view") and a view over a fully
// materialized object tree ("object view").  Both implement the read-only
// interfaces below; only the object view admits mutation.  Containers
// (CircuitContext, ModuleContext) own the underlying representation and hand
// out views.
package core

import (
	"github.com/encryptogroup/fuse/pkg/ir"
)

// DataType describes the type carried by a node port: a primitive kind, a
// security level, an optional shape, and a free-form annotation string.
type DataType interface {
	// PrimitiveType returns the primitive kind of this type.
	PrimitiveType() ir.PrimitiveType
	// PrimitiveTypeName returns the printable name of the primitive kind.
	PrimitiveTypeName() string
	// SecurityLevel returns the security level of this type.
	SecurityLevel() ir.SecurityLevel
	// SecurityLevelName returns the printable name of the security level.
	SecurityLevelName() string
	// IsPrimitive checks whether this type denotes a scalar, i.e. its shape is
	// empty or contains no dimension greater than one.
	IsPrimitive() bool
	// IsSecure checks whether this type is secret-shared (as opposed to
	// plaintext).
	IsSecure() bool
	// Shape returns the ordered dimensions of this type (empty for scalars).
	Shape() []int64
	// Annotations returns the free-form annotation string.
	Annotations() string
	// AttributeValue extracts a named attribute from the annotations
	// (best-effort, empty when absent).
	AttributeValue(attribute string) string
}

// Node is one vertex of the circuit hypergraph: a primitive operation applied
// to the outputs of earlier nodes.
type Node interface {
	// ID returns the node identifier, unique within the enclosing circuit.
	ID() uint64
	// Operation returns the primitive operation of this node.
	Operation() ir.PrimitiveOperation
	// OperationName returns the printable name of the operation.
	OperationName() string
	// IsInput checks whether this is an input node.
	IsInput() bool
	// IsOutput checks whether this is an output node.
	IsOutput() bool
	// IsConstant checks whether this node carries a constant payload.
	IsConstant() bool
	// IsUnary checks whether this node applies a unary operation.
	IsUnary() bool
	// IsBinary checks whether this node applies a binary operation.
	IsBinary() bool
	// IsSubcircuitCall checks whether this node calls another circuit.
	IsSubcircuitCall() bool
	// IsSplit checks whether this node splits a value into its bits.
	IsSplit() bool
	// IsMerge checks whether this node merges bits into a value.
	IsMerge() bool
	// IsLoop checks whether this node is a loop construct.
	IsLoop() bool
	// IsCustom checks whether this node applies a custom operation.
	IsCustom() bool
	// HasBooleanOperator checks whether the operation is a boolean gate.
	HasBooleanOperator() bool
	// HasArithmeticOperator checks whether the operation is arithmetic.
	HasArithmeticOperator() bool
	// HasComparisonOperator checks whether the operation is a comparison.
	HasComparisonOperator() bool
	// UsesInputOffsets checks whether an explicit offset list is present.
	// When absent, every input is taken at offset zero of its producer.
	UsesInputOffsets() bool
	// InputIDs returns the ordered identifiers of the producer nodes.
	InputIDs() []uint64
	// InputOffsets returns the parallel list of output offsets on the
	// producers, or an empty list when no offset list is present.
	InputOffsets() []uint32
	// NumInputs returns the number of input ports.
	NumInputs() uint
	// NumOutputs returns the number of output ports.
	NumOutputs() uint
	// InputTypeAt returns the declared type of the given input port.
	InputTypeAt(i uint) DataType
	// InputTypes returns the declared types of all input ports, in order.
	InputTypes() []DataType
	// OutputTypeAt returns the declared type of the given output port.
	OutputTypeAt(i uint) DataType
	// OutputTypes returns the declared types of all output ports, in order.
	OutputTypes() []DataType
	// CustomOperationName returns the registered name for Custom nodes.
	CustomOperationName() string
	// SubcircuitName returns the callee name for CallSubcircuit nodes.
	SubcircuitName() string
	// Payload returns the raw constant payload bytes (nil when absent).
	Payload() []byte
	// Annotations returns the free-form annotation string.
	Annotations() string
	// AttributeValue extracts a named attribute from the annotations.
	AttributeValue(attribute string) string
}

// Circuit is a named, ordered, acyclic hypergraph of typed operations with
// designated input and output nodes.  The node sequence is a valid topological
// order: every producer referenced by a node appears strictly earlier.
type Circuit interface {
	// Name returns the circuit name.
	Name() string
	// InputIDs returns the identifiers of the designated input nodes.
	InputIDs() []uint64
	// OutputIDs returns the identifiers of the designated output nodes.
	OutputIDs() []uint64
	// InputTypes returns the declared types of the circuit inputs.
	InputTypes() []DataType
	// OutputTypes returns the declared types of the circuit outputs.
	OutputTypes() []DataType
	// NumInputs returns the number of circuit inputs.
	NumInputs() uint
	// NumOutputs returns the number of circuit outputs.
	NumOutputs() uint
	// NumNodes returns the number of nodes in this circuit.
	NumNodes() uint
	// NodeWithID looks up a node by identifier, failing with ErrNotFound.
	// Lookup is linear; callers needing repeated lookups should build a side
	// map (rewrites would invalidate any internal index).
	NodeWithID(id uint64) (Node, error)
	// NextID returns a fresh identifier strictly greater than every identifier
	// currently assigned in this circuit.
	NextID() uint64
	// Traverse visits every node in topological order.
	Traverse(visit func(Node))
	// Annotations returns the free-form annotation string.
	Annotations() string
	// AttributeValue extracts a named attribute from the annotations.
	AttributeValue(attribute string) string
}

// Module is a named collection of circuits with one designated entry circuit.
// Circuits within a module may call each other by name; the call graph is
// acyclic.
type Module interface {
	// EntryName returns the name of the designated entry circuit.
	EntryName() string
	// CircuitNames enumerates the names of all contained circuits.
	CircuitNames() []string
	// CircuitWithName looks up a circuit by name, failing with ErrNotFound.
	CircuitWithName(name string) (Circuit, error)
	// EntryCircuit resolves the designated entry circuit.
	EntryCircuit() (Circuit, error)
	// Annotations returns the free-form annotation string.
	Annotations() string
	// AttributeValue extracts a named attribute from the annotations.
	AttributeValue(attribute string) string
}
