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
	"github.com/fxamacker/cbor/v2"
)

// Constant payloads are carried as a self-describing CBOR value: a scalar of
// any primitive type, a vector, a vector of vectors (matrix), or an opaque
// byte blob.  The node's declared output type is the authority; the accessors
// below check the payload against it and fail with ErrTypeMismatch when the
// two disagree.

// Scalar enumerates the Go representations of the primitive types.
type Scalar interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// EncodePayload serializes a constant value (scalar, vector, matrix or blob)
// into its on-the-wire payload form.
func EncodePayload(value any) ([]byte, error) {
	data, err := cbor.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	//
	return data, nil
}

// ConstantScalar decodes the payload of a constant node as a scalar of type T.
// The declared output type must agree with T.
func ConstantScalar[T Scalar](node Node) (T, error) {
	var value T
	//
	if err := checkConstant(node, primitiveKind(value)); err != nil {
		return value, err
	}
	//
	if err := cbor.Unmarshal(node.Payload(), &value); err != nil {
		return value, fmt.Errorf("constant payload of node %d: %w", node.ID(), ErrTypeMismatch)
	}
	//
	return value, nil
}

// ConstantVector decodes the payload of a constant node as a vector of T.  The
// declared output type must agree with T and, when it declares a shape, the
// decoded length must match the outermost dimension.
func ConstantVector[T Scalar](node Node) ([]T, error) {
	var (
		zero  T
		value []T
	)
	//
	if err := checkConstant(node, primitiveKind(zero)); err != nil {
		return nil, err
	}
	//
	if err := cbor.Unmarshal(node.Payload(), &value); err != nil {
		return nil, fmt.Errorf("constant payload of node %d: %w", node.ID(), ErrTypeMismatch)
	}
	//
	if shape := node.OutputTypeAt(0).Shape(); len(shape) >= 1 && int64(len(value)) != shape[0] {
		return nil, fmt.Errorf("constant vector of node %d has %d elements, declared %d: %w",
			node.ID(), len(value), shape[0], ErrTypeMismatch)
	}
	//
	return value, nil
}

// ConstantMatrix decodes the payload of a constant node as a matrix (vector of
// vectors) of T, checking the decoded dimensions against the declared shape.
func ConstantMatrix[T Scalar](node Node) ([][]T, error) {
	var (
		zero  T
		value [][]T
	)
	//
	if err := checkConstant(node, primitiveKind(zero)); err != nil {
		return nil, err
	}
	//
	if err := cbor.Unmarshal(node.Payload(), &value); err != nil {
		return nil, fmt.Errorf("constant payload of node %d: %w", node.ID(), ErrTypeMismatch)
	}
	//
	if shape := node.OutputTypeAt(0).Shape(); len(shape) >= 2 {
		if int64(len(value)) != shape[0] {
			return nil, fmt.Errorf("constant matrix of node %d has %d rows, declared %d: %w",
				node.ID(), len(value), shape[0], ErrTypeMismatch)
		}
		//
		for _, row := range value {
			if int64(len(row)) != shape[1] {
				return nil, fmt.Errorf("constant matrix of node %d has a row of %d columns, declared %d: %w",
					node.ID(), len(row), shape[1], ErrTypeMismatch)
			}
		}
	}
	//
	return value, nil
}

// ConstantBlob decodes the payload of a constant node as an opaque byte blob.
func ConstantBlob(node Node) ([]byte, error) {
	var value []byte
	//
	if !node.IsConstant() {
		return nil, fmt.Errorf("node %d is not a constant: %w", node.ID(), ErrTypeMismatch)
	}
	//
	if err := cbor.Unmarshal(node.Payload(), &value); err != nil {
		return nil, fmt.Errorf("constant payload of node %d: %w", node.ID(), ErrTypeMismatch)
	}
	//
	return value, nil
}

// DecodeConstant decodes the payload of a constant node under its declared
// output type, yielding a scalar for primitive types and a vector otherwise.
// This is the dynamically-typed companion of the generic accessors, used by
// the reference evaluator.
func DecodeConstant(node Node) (any, error) {
	if !node.IsConstant() {
		return nil, fmt.Errorf("node %d is not a constant: %w", node.ID(), ErrTypeMismatch)
	}
	//
	datatype := node.OutputTypeAt(0)
	if datatype == nil {
		return nil, fmt.Errorf("constant node %d has no declared output type: %w", node.ID(), ErrTypeMismatch)
	}
	//
	if datatype.IsPrimitive() {
		return decodeScalar(node, datatype.PrimitiveType())
	}
	//
	return decodeVector(node, datatype.PrimitiveType())
}

func decodeScalar(node Node, primitive ir.PrimitiveType) (any, error) {
	switch primitive {
	case ir.PrimitiveTypeBool:
		return ConstantScalar[bool](node)
	case ir.PrimitiveTypeInt8:
		return ConstantScalar[int8](node)
	case ir.PrimitiveTypeInt16:
		return ConstantScalar[int16](node)
	case ir.PrimitiveTypeInt32:
		return ConstantScalar[int32](node)
	case ir.PrimitiveTypeInt64:
		return ConstantScalar[int64](node)
	case ir.PrimitiveTypeUInt8:
		return ConstantScalar[uint8](node)
	case ir.PrimitiveTypeUInt16:
		return ConstantScalar[uint16](node)
	case ir.PrimitiveTypeUInt32:
		return ConstantScalar[uint32](node)
	case ir.PrimitiveTypeUInt64:
		return ConstantScalar[uint64](node)
	case ir.PrimitiveTypeFloat:
		return ConstantScalar[float32](node)
	case ir.PrimitiveTypeDouble:
		return ConstantScalar[float64](node)
	default:
		return nil, fmt.Errorf("constant node %d has invalid primitive type: %w", node.ID(), ErrTypeMismatch)
	}
}

func decodeVector(node Node, primitive ir.PrimitiveType) (any, error) {
	switch primitive {
	case ir.PrimitiveTypeBool:
		return ConstantVector[bool](node)
	case ir.PrimitiveTypeInt8:
		return ConstantVector[int8](node)
	case ir.PrimitiveTypeInt16:
		return ConstantVector[int16](node)
	case ir.PrimitiveTypeInt32:
		return ConstantVector[int32](node)
	case ir.PrimitiveTypeInt64:
		return ConstantVector[int64](node)
	case ir.PrimitiveTypeUInt8:
		return ConstantVector[uint8](node)
	case ir.PrimitiveTypeUInt16:
		return ConstantVector[uint16](node)
	case ir.PrimitiveTypeUInt32:
		return ConstantVector[uint32](node)
	case ir.PrimitiveTypeUInt64:
		return ConstantVector[uint64](node)
	case ir.PrimitiveTypeFloat:
		return ConstantVector[float32](node)
	case ir.PrimitiveTypeDouble:
		return ConstantVector[float64](node)
	default:
		return nil, fmt.Errorf("constant node %d has invalid primitive type: %w", node.ID(), ErrTypeMismatch)
	}
}

// checkConstant ensures a node is a constant whose declared output type has
// the expected primitive kind.
func checkConstant(node Node, expected ir.PrimitiveType) error {
	if !node.IsConstant() {
		return fmt.Errorf("node %d is not a constant: %w", node.ID(), ErrTypeMismatch)
	}
	//
	datatype := node.OutputTypeAt(0)
	if datatype == nil {
		return fmt.Errorf("constant node %d has no declared output type: %w", node.ID(), ErrTypeMismatch)
	}
	//
	if datatype.PrimitiveType() != expected {
		return fmt.Errorf("constant node %d declares %s, requested %s: %w",
			node.ID(), datatype.PrimitiveTypeName(), expected, ErrTypeMismatch)
	}
	//
	return nil
}

// primitiveKind maps a Go scalar onto its primitive type tag.
func primitiveKind(value any) ir.PrimitiveType {
	switch value.(type) {
	case bool:
		return ir.PrimitiveTypeBool
	case int8:
		return ir.PrimitiveTypeInt8
	case int16:
		return ir.PrimitiveTypeInt16
	case int32:
		return ir.PrimitiveTypeInt32
	case int64:
		return ir.PrimitiveTypeInt64
	case uint8:
		return ir.PrimitiveTypeUInt8
	case uint16:
		return ir.PrimitiveTypeUInt16
	case uint32:
		return ir.PrimitiveTypeUInt32
	case uint64:
		return ir.PrimitiveTypeUInt64
	case float32:
		return ir.PrimitiveTypeFloat
	default:
		return ir.PrimitiveTypeDouble
	}
}
