// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// Attribute is a value from a small closed set of linguistic features.
// Instances are canonical: each code maps to exactly one pointer for the
// life of the process, so holders may compare attributes by identity.
type Attribute interface {
	comparable
	// Code is the short string written to storage.
	Code() string
	// Label is the human readable name.
	Label() string
}

// Registry maps persisted codes to the canonical instances of one
// attribute kind. It is built once and is read-only afterwards, so
// lookups need no locking.
type Registry[T Attribute] struct {
	byCode map[string]T
	values []T
}

// NewRegistry builds a registry from the closed set of values.
// It panics on an empty or duplicate code, since the set is fixed at
// compile time and such a mistake is a programming error.
func NewRegistry[T Attribute](values ...T) *Registry[T] {
	r := &Registry[T]{
		byCode: make(map[string]T, len(values)),
		values: make([]T, 0, len(values)),
	}
	for _, v := range values {
		code := v.Code()
		if code == "" {
			panic("attribute registry: empty code")
		}
		if _, exists := r.byCode[code]; exists {
			panic(fmt.Sprintf("attribute registry: code %q already registered", code))
		}
		r.byCode[code] = v
		r.values = append(r.values, v)
	}
	return r
}

// Lookup returns the canonical instance for code.
// The second result is false when the code is not part of the set.
func (r *Registry[T]) Lookup(code string) (T, bool) {
	v, ok := r.byCode[code]
	return v, ok
}

// Values returns the closed set in declaration order.
func (r *Registry[T]) Values() []T {
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

// Len returns the number of registered values.
func (r *Registry[T]) Len() int {
	return len(r.values)
}

// AdjectivePosition restricts the syntactic position an adjective may take
// relative to the noun it modifies. Positions are only present in older
// WordNet releases.
type AdjectivePosition struct {
	code  string
	label string
}

// Code returns the persisted code.
func (p *AdjectivePosition) Code() string { return p.code }

// Label returns the display label.
func (p *AdjectivePosition) Label() string { return p.label }

func (p *AdjectivePosition) String() string {
	return "[AdjectivePosition: " + p.label + "]"
}

// Adjective position codes as written to storage.
const (
	PositionNoneCode                 = "none"
	PositionPredicativeCode          = "p"
	PositionAttributiveCode          = "a"
	PositionImmediatePostnominalCode = "ip"
)

// Canonical adjective positions.
var (
	PositionNone                 = &AdjectivePosition{code: PositionNoneCode, label: "none"}
	PositionPredicative          = &AdjectivePosition{code: PositionPredicativeCode, label: "predicative"}
	PositionAttributive          = &AdjectivePosition{code: PositionAttributiveCode, label: "attributive"}
	PositionImmediatePostnominal = &AdjectivePosition{code: PositionImmediatePostnominalCode, label: "immediate postnominal"}
)

var adjectivePositions = NewRegistry(
	PositionNone,
	PositionPredicative,
	PositionAttributive,
	PositionImmediatePostnominal,
)

// AdjectivePositions returns the registry of adjective positions.
func AdjectivePositions() *Registry[*AdjectivePosition] {
	return adjectivePositions
}

// AdjectivePositionForCode returns the canonical position for a code.
func AdjectivePositionForCode(code string) (*AdjectivePosition, bool) {
	return adjectivePositions.Lookup(code)
}
