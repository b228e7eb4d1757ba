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

import "strings"

// Annotation strings carry free-form metadata following a small key/value
// convention: "key: value (, key: value)*".  Unknown keys are preserved
// verbatim through every transformation and round-trip.  Recognised keys
// include "owner" and "party" (producer identity), "simd" (lane count),
// "cond" and "val" (Mux input-group sizes) and "const" (constant-operand
// marker on binary operations).

// AttributeValue extracts the value for a named attribute from an annotation
// string.  The lookup is best-effort: when the attribute is absent, or the
// annotation does not follow the key/value convention, the empty string is
// returned.
func AttributeValue(annotations, attribute string) string {
	for _, token := range strings.Split(annotations, ",") {
		key, value, ok := strings.Cut(token, ":")
		if !ok {
			continue
		}
		//
		if strings.TrimSpace(key) == attribute {
			return strings.TrimSpace(value)
		}
	}
	//
	return ""
}

// SetAttributeValue returns an annotation string in which the named attribute
// holds the given value.  An existing binding for the attribute is replaced in
// place; otherwise the binding is appended.  All other tokens (including those
// not following the key/value convention) are preserved verbatim.
func SetAttributeValue(annotations, attribute, value string) string {
	var (
		tokens  []string
		updated bool
	)
	//
	if annotations != "" {
		tokens = strings.Split(annotations, ",")
	}
	//
	for i, token := range tokens {
		key, _, ok := strings.Cut(token, ":")
		if ok && strings.TrimSpace(key) == attribute {
			tokens[i] = attribute + ": " + value
			updated = true
		}
	}
	//
	if !updated {
		tokens = append(tokens, attribute+": "+value)
	}
	//
	return strings.Join(tokens, ",")
}
