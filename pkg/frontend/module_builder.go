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
	"fmt"

	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/encryptogroup/fuse/pkg/passes"
	"github.com/encryptogroup/fuse/pkg/util/file"
	flatbuffers "github.com/google/flatbuffers/go"
)

// DefaultEntryName is the entry circuit name a module builder starts with.
const DefaultEntryName = "main"

// ModuleBuilder accumulates circuit builders and already-serialized circuit
// buffers into one module.  It owns the nested circuit builders; attached
// serialized buffers are copied into the module buffer at Finish time.
type ModuleBuilder struct {
	builders map[string]*CircuitBuilder
	// circuit names in attachment order
	order []string
	// already-serialized circuits, keyed by name
	serialized map[string][]byte
	entryPoint string
	annotations string
	finished   []byte
}

// NewModuleBuilder constructs an empty module builder with the default entry
// circuit name.
func NewModuleBuilder() *ModuleBuilder {
	return &ModuleBuilder{
		builders:   make(map[string]*CircuitBuilder),
		serialized: make(map[string][]byte),
		entryPoint: DefaultEntryName,
	}
}

// AddCircuit attaches a fresh circuit builder under the given name, taking
// ownership of it.  Attaching a name twice returns the existing builder.
func (p *ModuleBuilder) AddCircuit(name string) *CircuitBuilder {
	if builder, ok := p.builders[name]; ok {
		return builder
	}
	//
	builder := NewCircuitBuilder(name)
	p.builders[name] = builder
	p.order = append(p.order, name)
	//
	return builder
}

// CircuitWithName returns the circuit builder attached under a name, or nil.
func (p *ModuleBuilder) CircuitWithName(name string) *CircuitBuilder {
	return p.builders[name]
}

// MainCircuit returns the builder of the designated entry circuit, attaching
// one when absent.
func (p *ModuleBuilder) MainCircuit() *CircuitBuilder {
	return p.AddCircuit(p.entryPoint)
}

// ContainsCircuit checks whether a circuit of the given name is attached
// (either as a builder or as a serialized buffer).
func (p *ModuleBuilder) ContainsCircuit(name string) bool {
	_, builder := p.builders[name]
	_, buffer := p.serialized[name]
	//
	return builder || buffer
}

// AddSerializedCircuit attaches an already-serialized circuit buffer.  The
// bytes are copied; the caller keeps ownership of the slice passed in.
func (p *ModuleBuilder) AddSerializedCircuit(buf []byte) error {
	view, err := core.NewCircuitBufferViewFromBytes(buf)
	if err != nil {
		return err
	}
	//
	name := view.Name()
	if p.ContainsCircuit(name) {
		return fmt.Errorf("circuit %s attached twice: %w", name, core.ErrDuplicateIdentifier)
	}
	//
	data := make([]byte, len(buf))
	copy(data, buf)
	//
	p.serialized[name] = data
	p.order = append(p.order, name)
	//
	return nil
}

// SetEntryCircuitName designates the entry circuit.
func (p *ModuleBuilder) SetEntryCircuitName(name string) {
	p.entryPoint = name
}

// AddAnnotations appends to the module annotation string.
func (p *ModuleBuilder) AddAnnotations(annotations string) {
	if p.annotations == "" {
		p.annotations = annotations
	} else {
		p.annotations += "," + annotations
	}
}

// Finish assembles the serialized module.  Every nested circuit builder is
// finished first; the entry name must resolve, every call target must resolve,
// and the call graph must be acyclic.  The first call seals the builder.
func (p *ModuleBuilder) Finish() ([]byte, error) {
	if p.finished != nil {
		return p.finished, nil
	}
	//
	buffers := make([][]byte, 0, len(p.order))
	callGraph := make(map[string][]string, len(p.order))
	//
	for _, name := range p.order {
		if builder, ok := p.builders[name]; ok {
			data, err := builder.Finish()
			if err != nil {
				return nil, err
			}
			//
			buffers = append(buffers, data)
			callGraph[name] = builder.CallTargets()
			//
			continue
		}
		//
		data := p.serialized[name]
		buffers = append(buffers, data)
		//
		targets, err := scanCallTargets(data)
		if err != nil {
			return nil, err
		}
		//
		callGraph[name] = targets
	}
	//
	if err := p.validate(callGraph); err != nil {
		return nil, err
	}
	//
	b := flatbuffers.NewBuilder(1024)
	//
	entryOffset := b.CreateString(p.entryPoint)
	//
	annotationsOffset := flatbuffers.UOffsetT(0)
	if p.annotations != "" {
		annotationsOffset = b.CreateString(p.annotations)
	}
	//
	circuitOffsets := make([]flatbuffers.UOffsetT, len(buffers))
	for i, data := range buffers {
		bufferOffset := b.CreateByteString(data)
		ir.CircuitTableBufferStart(b)
		ir.CircuitTableBufferAddCircuitBuffer(b, bufferOffset)
		circuitOffsets[i] = ir.CircuitTableBufferEnd(b)
	}
	//
	ir.ModuleTableStartCircuitsVector(b, len(circuitOffsets))
	for j := len(circuitOffsets) - 1; j >= 0; j-- {
		b.PrependUOffsetT(circuitOffsets[j])
	}
	//
	circuitsOffset := b.EndVector(len(circuitOffsets))
	//
	ir.ModuleTableStart(b)
	ir.ModuleTableAddEntryPoint(b, entryOffset)
	ir.ModuleTableAddCircuits(b, circuitsOffset)
	ir.ModuleTableAddModuleAnnotations(b, annotationsOffset)
	b.Finish(ir.ModuleTableEnd(b))
	//
	p.finished = b.FinishedBytes()
	//
	return p.finished, nil
}

// FinishAndWriteToFile assembles the serialized module and writes it out.
func (p *ModuleBuilder) FinishAndWriteToFile(path string) error {
	data, err := p.Finish()
	if err != nil {
		return err
	}
	//
	return file.WriteBytes(path, data)
}

// validate checks the entry name, call target resolution and call graph
// acyclicity of the assembled module.
func (p *ModuleBuilder) validate(callGraph map[string][]string) error {
	if _, ok := callGraph[p.entryPoint]; !ok {
		return fmt.Errorf("entry circuit %s: %w", p.entryPoint, core.ErrNotFound)
	}
	//
	for name, targets := range callGraph {
		for _, target := range targets {
			if _, ok := callGraph[target]; !ok {
				return fmt.Errorf("circuit %s calls %s: %w", name, target, core.ErrNotFound)
			}
		}
	}
	//
	return passes.CheckCallGraphAcyclic(callGraph)
}

// scanCallTargets extracts the callee names of every call node in a
// serialized circuit.
func scanCallTargets(buf []byte) ([]string, error) {
	view, err := core.NewCircuitBufferViewFromBytes(buf)
	if err != nil {
		return nil, err
	}
	//
	var targets []string
	//
	view.Traverse(func(node core.Node) {
		if node.IsSubcircuitCall() {
			targets = append(targets, node.SubcircuitName())
		}
	})
	//
	return targets, nil
}
