// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

//go:generate stringer -type=SetPolicy -output=attribute_string.go

package taghelper

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sort"
)

var (
	// ErrEmptyKey is returned when an attribute is given an empty key.
	ErrEmptyKey = errors.New("attribute key is empty")
	// ErrIndexOutOfRange is returned when an index does not refer
	// to a position in an attribute collection.
	ErrIndexOutOfRange = errors.New("attribute index out of range")
)

// An Attribute is a key-value pair on an HTML element.
// Keys are compared case-insensitively.
type Attribute struct {
	Key   string
	Value any
}

// Equal reports whether a and other have the same key, ignoring case,
// and deeply equal values.
func (a Attribute) Equal(other Attribute) bool {
	return keyEqual(a.Key, other.Key) && reflect.DeepEqual(a.Value, other.Value)
}

// keyEqual reports whether two keys are equal under ASCII case folding.
// Non-ASCII bytes must match exactly.
func keyEqual(k1, k2 string) bool {
	if len(k1) != len(k2) {
		return false
	}
	for i := 0; i < len(k1); i++ {
		if toLowerASCII(k1[i]) != toLowerASCII(k2[i]) {
			return false
		}
	}
	return true
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// AttributesFromMap returns the entries of m as attributes sorted by key.
func AttributesFromMap[V any](m map[string]V) []Attribute {
	attrs := make([]Attribute, 0, len(m))
	for k, v := range m {
		attrs = append(attrs, Attribute{Key: k, Value: v})
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].Key < attrs[j].Key
	})
	return attrs
}

// ReadOnlyAttributes is an ordered list of attributes.
// Keys are not required to be unique.
// The zero value is an empty list.
type ReadOnlyAttributes struct {
	list []Attribute
}

// NewReadOnlyAttributes returns a list containing a copy of attrs.
func NewReadOnlyAttributes(attrs ...Attribute) *ReadOnlyAttributes {
	return &ReadOnlyAttributes{list: slices.Clone(attrs)}
}

// Len returns the number of attributes in the list.
func (ra *ReadOnlyAttributes) Len() int {
	if ra == nil {
		return 0
	}
	return len(ra.list)
}

// At returns the i'th attribute in the list.
// At panics if i is not in the range [0, ra.Len()).
func (ra *ReadOnlyAttributes) At(i int) Attribute {
	if i < 0 || i >= ra.Len() {
		panic(fmt.Sprintf("attribute index %d out of range [0, %d)", i, ra.Len()))
	}
	return ra.list[i]
}

// Get returns the first attribute with the given key.
func (ra *ReadOnlyAttributes) Get(key string) (_ Attribute, ok bool) {
	i := ra.index(key)
	if i < 0 {
		return Attribute{}, false
	}
	return ra.list[i], true
}

// Lookup returns the last attribute with the given key.
func (ra *ReadOnlyAttributes) Lookup(key string) (_ Attribute, ok bool) {
	i := ra.lastIndex(key)
	if i < 0 {
		return Attribute{}, false
	}
	return ra.list[i], true
}

// LookupAll returns every attribute with the given key in list order.
// It returns nil if no attribute matches.
func (ra *ReadOnlyAttributes) LookupAll(key string) []Attribute {
	var found []Attribute
	for _, attr := range ra.All() {
		if keyEqual(key, attr.Key) {
			found = append(found, attr)
		}
	}
	return found
}

// ContainsKey reports whether any attribute has the given key.
func (ra *ReadOnlyAttributes) ContainsKey(key string) bool {
	return ra.index(key) >= 0
}

// Contains reports whether the list contains an attribute equal to attr.
func (ra *ReadOnlyAttributes) Contains(attr Attribute) bool {
	return ra.IndexOf(attr) >= 0
}

// IndexOf returns the index of the first attribute equal to attr
// or -1 if no attribute is equal.
func (ra *ReadOnlyAttributes) IndexOf(attr Attribute) int {
	for i, a := range ra.All() {
		if a.Equal(attr) {
			return i
		}
	}
	return -1
}

// All returns an iterator over the index and value of each attribute.
// The iterator reads the list as it runs,
// so modifying the list during iteration has undefined results.
func (ra *ReadOnlyAttributes) All() iter.Seq2[int, Attribute] {
	return func(yield func(int, Attribute) bool) {
		for i := 0; i < ra.Len(); i++ {
			if !yield(i, ra.list[i]) {
				return
			}
		}
	}
}

// Keys returns an iterator over the attribute keys in list order.
func (ra *ReadOnlyAttributes) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, attr := range ra.All() {
			if !yield(attr.Key) {
				return
			}
		}
	}
}

// Values returns an iterator over the attribute values in list order.
func (ra *ReadOnlyAttributes) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, attr := range ra.All() {
			if !yield(attr.Value) {
				return
			}
		}
	}
}

func (ra *ReadOnlyAttributes) index(key string) int {
	for i, attr := range ra.All() {
		if keyEqual(key, attr.Key) {
			return i
		}
	}
	return -1
}

func (ra *ReadOnlyAttributes) lastIndex(key string) int {
	for i := ra.Len() - 1; i >= 0; i-- {
		if keyEqual(key, ra.list[i].Key) {
			return i
		}
	}
	return -1
}

// SetPolicy is an enumeration of strategies for [Attributes.Set]
// when more than one attribute has the key being set.
type SetPolicy int

const (
	// ReplaceFirst replaces the first attribute with the key
	// and removes the rest.
	ReplaceFirst SetPolicy = iota
	// ReplaceLast replaces the last attribute with the key
	// and removes the rest.
	ReplaceLast
)

// Attributes is a mutable list of attributes.
// [Attributes.Set] keeps at most one attribute per key,
// but [Attributes.Add] and [Attributes.Insert] do not check for duplicates.
// The zero value is an empty list that uses [ReplaceFirst].
type Attributes struct {
	ReadOnlyAttributes

	// Policy determines which attribute Set replaces.
	Policy SetPolicy
}

// NewAttributes returns a list built by calling Set for each of attrs in order.
// Attributes with the same key are collapsed into the position and spelling
// of the first occurrence with the value of the last.
// Attributes with an empty key are skipped.
func NewAttributes(attrs ...Attribute) *Attributes {
	a := new(Attributes)
	for _, attr := range attrs {
		a.Set(attr.Key, attr.Value)
	}
	return a
}

// Set sets the value of the attribute with the given key.
// If one or more attributes already have the key,
// then the one chosen by a.Policy has its value replaced
// and the others are removed.
// The replaced attribute keeps its position and the spelling of its key.
// Otherwise, a new attribute is added to the end of the list.
func (a *Attributes) Set(key string, value any) error {
	if key == "" {
		return fmt.Errorf("set attribute: %w", ErrEmptyKey)
	}
	keep := a.index(key)
	if a.Policy == ReplaceLast {
		keep = a.lastIndex(key)
	}
	if keep < 0 {
		a.list = append(a.list, Attribute{Key: key, Value: value})
		return nil
	}
	a.list[keep].Value = value
	n := 0
	for i, attr := range a.list {
		if i != keep && keyEqual(key, attr.Key) {
			continue
		}
		a.list[n] = attr
		n++
	}
	clear(a.list[n:])
	a.list = a.list[:n]
	return nil
}

// Add appends attr to the end of the list
// without removing other attributes with the same key.
func (a *Attributes) Add(attr Attribute) error {
	if attr.Key == "" {
		return fmt.Errorf("add attribute: %w", ErrEmptyKey)
	}
	a.list = append(a.list, attr)
	return nil
}

// Insert inserts attr at index i,
// which must be in the range [0, a.Len()].
func (a *Attributes) Insert(i int, attr Attribute) error {
	if attr.Key == "" {
		return fmt.Errorf("insert attribute: %w", ErrEmptyKey)
	}
	if i < 0 || i > a.Len() {
		return fmt.Errorf("insert attribute at %d: %w", i, ErrIndexOutOfRange)
	}
	a.list = slices.Insert(a.list, i, attr)
	return nil
}

// SetAt replaces the i'th attribute with attr.
func (a *Attributes) SetAt(i int, attr Attribute) error {
	if attr.Key == "" {
		return fmt.Errorf("set attribute at %d: %w", i, ErrEmptyKey)
	}
	if i < 0 || i >= a.Len() {
		return fmt.Errorf("set attribute at %d: %w", i, ErrIndexOutOfRange)
	}
	a.list[i] = attr
	return nil
}

// RemoveAll removes every attribute with the given key
// and reports whether any were removed.
func (a *Attributes) RemoveAll(key string) bool {
	n := len(a.list)
	a.list = slices.DeleteFunc(a.list, func(attr Attribute) bool {
		return keyEqual(key, attr.Key)
	})
	return len(a.list) < n
}

// Remove removes the first attribute equal to attr
// and reports whether one was found.
func (a *Attributes) Remove(attr Attribute) bool {
	i := a.IndexOf(attr)
	if i < 0 {
		return false
	}
	a.list = slices.Delete(a.list, i, i+1)
	return true
}

// RemoveAt removes the i'th attribute.
func (a *Attributes) RemoveAt(i int) error {
	if i < 0 || i >= a.Len() {
		return fmt.Errorf("remove attribute at %d: %w", i, ErrIndexOutOfRange)
	}
	a.list = slices.Delete(a.list, i, i+1)
	return nil
}

// Clear removes all attributes.
func (a *Attributes) Clear() {
	clear(a.list)
	a.list = a.list[:0]
}
