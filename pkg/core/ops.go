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

// IsUnaryOperation checks whether a given operation takes exactly one input
// and produces one output per input group.
func IsUnaryOperation(op ir.PrimitiveOperation) bool {
	switch op {
	case ir.PrimitiveOperationNot, ir.PrimitiveOperationNeg, ir.PrimitiveOperationSquare:
		return true
	default:
		return false
	}
}

// IsBinaryOperation checks whether a given operation combines two inputs into
// one output.
func IsBinaryOperation(op ir.PrimitiveOperation) bool {
	switch op {
	case ir.PrimitiveOperationAnd, ir.PrimitiveOperationOr, ir.PrimitiveOperationXor,
		ir.PrimitiveOperationXnor, ir.PrimitiveOperationNand, ir.PrimitiveOperationNor,
		ir.PrimitiveOperationAdd, ir.PrimitiveOperationSub, ir.PrimitiveOperationMul,
		ir.PrimitiveOperationDiv, ir.PrimitiveOperationEq, ir.PrimitiveOperationGt,
		ir.PrimitiveOperationGe, ir.PrimitiveOperationLt, ir.PrimitiveOperationLe:
		return true
	default:
		return false
	}
}

// IsBooleanOperation checks whether a given operation is a boolean gate.
func IsBooleanOperation(op ir.PrimitiveOperation) bool {
	switch op {
	case ir.PrimitiveOperationAnd, ir.PrimitiveOperationOr, ir.PrimitiveOperationXor,
		ir.PrimitiveOperationXnor, ir.PrimitiveOperationNand, ir.PrimitiveOperationNor,
		ir.PrimitiveOperationNot:
		return true
	default:
		return false
	}
}

// IsArithmeticOperation checks whether a given operation is arithmetic.
func IsArithmeticOperation(op ir.PrimitiveOperation) bool {
	switch op {
	case ir.PrimitiveOperationNeg, ir.PrimitiveOperationAdd, ir.PrimitiveOperationSub,
		ir.PrimitiveOperationMul, ir.PrimitiveOperationDiv, ir.PrimitiveOperationSquare:
		return true
	default:
		return false
	}
}

// IsComparisonOperation checks whether a given operation compares two inputs.
func IsComparisonOperation(op ir.PrimitiveOperation) bool {
	switch op {
	case ir.PrimitiveOperationEq, ir.PrimitiveOperationGt, ir.PrimitiveOperationGe,
		ir.PrimitiveOperationLt, ir.PrimitiveOperationLe:
		return true
	default:
		return false
	}
}

// TypeBitWidth returns the number of boolean outputs a Split of the given
// primitive type produces (i.e. its bit width).  Types without a defined bit
// decomposition (Float, Double) yield ErrTypeMismatch.
func TypeBitWidth(primitive ir.PrimitiveType) (uint, error) {
	switch primitive {
	case ir.PrimitiveTypeBool:
		return 1, nil
	case ir.PrimitiveTypeInt8, ir.PrimitiveTypeUInt8:
		return 8, nil
	case ir.PrimitiveTypeInt16, ir.PrimitiveTypeUInt16:
		return 16, nil
	case ir.PrimitiveTypeInt32, ir.PrimitiveTypeUInt32:
		return 32, nil
	case ir.PrimitiveTypeInt64, ir.PrimitiveTypeUInt64:
		return 64, nil
	default:
		return 0, fmt.Errorf("split of %s: %w", primitive, ErrTypeMismatch)
	}
}
