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
	"github.com/encryptogroup/fuse/pkg/util/file"
	flatbuffers "github.com/google/flatbuffers/go"
)

// A container holds the IR in exactly one of two states: Packed (a contiguous
// immutable byte buffer, admitting only zero-copy buffer views) or Unpacked
// (an owned object tree, admitting object views including mutable ones).  At
// any instant exactly one representation is authoritative and the other is
// empty.  Packed mode lets producers forward circuits between layers cheaply
// and consumers read without allocation; unpacked mode lets transformations
// rewrite freely.  Containers are single-owner: two views over the same
// container must not coexist when either is mutable.

// CircuitContext is the storage container for a single circuit.
type CircuitContext struct {
	// authoritative in the Packed state
	buffer []byte
	// authoritative in the Unpacked state
	object *ir.CircuitTableT
}

// NewCircuitContext constructs a Packed container over serialized circuit
// bytes, failing with ErrDecode when the bytes are malformed.
func NewCircuitContext(buf []byte) (*CircuitContext, error) {
	if _, err := NewCircuitBufferViewFromBytes(buf); err != nil {
		return nil, err
	}
	//
	return &CircuitContext{buffer: buf}, nil
}

// ReadCircuitFromFile reads a serialized circuit, yielding a container in the
// Packed state.
func ReadCircuitFromFile(path string) (*CircuitContext, error) {
	data, err := file.ReadBytes(path)
	if err != nil {
		return nil, err
	}
	//
	return NewCircuitContext(data)
}

// IsPacked checks whether this container is in the Packed state.
func (p *CircuitContext) IsPacked() bool {
	return p.object == nil
}

// Bytes returns the serialized form of this container.  In the Packed state
// this is the authoritative buffer as-is; in the Unpacked state the object
// tree is serialized first (without changing the container state).
func (p *CircuitContext) Bytes() []byte {
	if p.object != nil {
		return packCircuitTable(p.object)
	}
	//
	return p.buffer
}

// WriteToFile writes the serialized form of this container to a file.
func (p *CircuitContext) WriteToFile(path string) error {
	return file.WriteBytes(path, p.Bytes())
}

// ReadOnly returns a read-only view of this container: a zero-copy buffer
// view in the Packed state, an object view otherwise.
func (p *CircuitContext) ReadOnly() (Circuit, error) {
	if p.object != nil {
		return NewCircuitObject(p.object), nil
	}
	//
	return NewCircuitBufferViewFromBytes(p.buffer)
}

// BufferView returns the zero-copy buffer view of this container, failing
// with ErrWrongState unless the container is Packed.
func (p *CircuitContext) BufferView() (*CircuitBufferView, error) {
	if p.object != nil {
		return nil, fmt.Errorf("buffer view of unpacked circuit: %w", ErrWrongState)
	}
	//
	return NewCircuitBufferViewFromBytes(p.buffer)
}

// Mutable returns the mutable object view of this container, unpacking it
// first (and discarding the buffer) when necessary.  Idempotent.
func (p *CircuitContext) Mutable() (*CircuitObject, error) {
	if p.object == nil {
		view, err := NewCircuitBufferViewFromBytes(p.buffer)
		if err != nil {
			return nil, err
		}
		//
		p.object = view.table.UnPack()
		p.buffer = nil
	}
	//
	return NewCircuitObject(p.object), nil
}

// Pack serializes the object tree into bytes and discards the tree, moving
// the container into the Packed state.  Idempotent.
func (p *CircuitContext) Pack() {
	if p.object != nil {
		p.buffer = packCircuitTable(p.object)
		p.object = nil
	}
}

// Reset releases all state held by this container.
func (p *CircuitContext) Reset() {
	p.buffer = nil
	p.object = nil
}

// CreateCopy produces a deep copy of this container in its current state.
// Mutations on the copy never affect the original.
func (p *CircuitContext) CreateCopy() *CircuitContext {
	if p.object != nil {
		data := packCircuitTable(p.object)
		return &CircuitContext{object: ir.GetRootAsCircuitTable(data, 0).UnPack()}
	}
	//
	if p.buffer == nil {
		return &CircuitContext{}
	}
	//
	buffer := make([]byte, len(p.buffer))
	copy(buffer, p.buffer)
	//
	return &CircuitContext{buffer: buffer}
}

// ModuleContext is the storage container for a module of circuits.
type ModuleContext struct {
	// authoritative in the Packed state
	buffer []byte
	// authoritative in the Unpacked state
	object *ModuleObject
}

// NewModuleContext constructs a Packed container over serialized module
// bytes, failing with ErrDecode when the bytes are malformed.
func NewModuleContext(buf []byte) (*ModuleContext, error) {
	if _, err := NewModuleBufferViewFromBytes(buf); err != nil {
		return nil, err
	}
	//
	return &ModuleContext{buffer: buf}, nil
}

// ReadModuleFromFile reads a serialized module, yielding a container in the
// Packed state.
func ReadModuleFromFile(path string) (*ModuleContext, error) {
	data, err := file.ReadBytes(path)
	if err != nil {
		return nil, err
	}
	//
	return NewModuleContext(data)
}

// IsPacked checks whether this container is in the Packed state.
func (p *ModuleContext) IsPacked() bool {
	return p.object == nil
}

// Bytes returns the serialized form of this container, serializing the object
// tree first (without changing the container state) when Unpacked.
func (p *ModuleContext) Bytes() []byte {
	if p.object != nil {
		return packModuleTable(p.object.repack())
	}
	//
	return p.buffer
}

// WriteToFile writes the serialized form of this container to a file.
func (p *ModuleContext) WriteToFile(path string) error {
	return file.WriteBytes(path, p.Bytes())
}

// ReadOnly returns a read-only view of this container: a zero-copy buffer
// view in the Packed state, an object view otherwise.
func (p *ModuleContext) ReadOnly() (Module, error) {
	if p.object != nil {
		return p.object, nil
	}
	//
	return NewModuleBufferViewFromBytes(p.buffer)
}

// BufferView returns the zero-copy buffer view of this container, failing
// with ErrWrongState unless the container is Packed.
func (p *ModuleContext) BufferView() (*ModuleBufferView, error) {
	if p.object != nil {
		return nil, fmt.Errorf("buffer view of unpacked module: %w", ErrWrongState)
	}
	//
	return NewModuleBufferViewFromBytes(p.buffer)
}

// Mutable returns the mutable object view of this container, unpacking it
// first (and discarding the buffer) when necessary.  Idempotent; repeated
// calls return a view over the same object tree, so circuits already unpacked
// through it remain unpacked.
func (p *ModuleContext) Mutable() (*ModuleObject, error) {
	if p.object == nil {
		view, err := NewModuleBufferViewFromBytes(p.buffer)
		if err != nil {
			return nil, err
		}
		//
		object, err := NewModuleObject(view.table.UnPack())
		if err != nil {
			return nil, err
		}
		//
		p.object = object
		p.buffer = nil
	}
	//
	return p.object, nil
}

// Pack serializes the object tree into bytes and discards the tree, moving
// the container into the Packed state.  Idempotent.
func (p *ModuleContext) Pack() {
	if p.object != nil {
		p.buffer = packModuleTable(p.object.repack())
		p.object = nil
	}
}

// Reset releases all state held by this container.
func (p *ModuleContext) Reset() {
	p.buffer = nil
	p.object = nil
}

// CreateCopy produces a deep copy of this container in its current state.
func (p *ModuleContext) CreateCopy() (*ModuleContext, error) {
	if p.object != nil {
		data := packModuleTable(p.object.repack())
		//
		object, err := NewModuleObject(ir.GetRootAsModuleTable(data, 0).UnPack())
		if err != nil {
			return nil, err
		}
		//
		return &ModuleContext{object: object}, nil
	}
	//
	if p.buffer == nil {
		return &ModuleContext{}, nil
	}
	//
	buffer := make([]byte, len(p.buffer))
	copy(buffer, p.buffer)
	//
	return &ModuleContext{buffer: buffer}, nil
}

// packCircuitTable serializes a materialized circuit into its canonical
// buffer form.
func packCircuitTable(t *ir.CircuitTableT) []byte {
	builder := flatbuffers.NewBuilder(1024)
	builder.Finish(t.Pack(builder))
	//
	return builder.FinishedBytes()
}

// packModuleTable serializes a materialized module into its canonical buffer
// form.
func packModuleTable(t *ir.ModuleTableT) []byte {
	builder := flatbuffers.NewBuilder(1024)
	builder.Finish(t.Pack(builder))
	//
	return builder.FinishedBytes()
}
