// Package types provides type definitions for the schema-driven resume
// document model used throughout the resume-studio engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ValueKind discriminates the variants a field value can hold.
type ValueKind string

// Value kinds. Every field value is exactly one of these; which kind a
// field is allowed to hold is decided by its FieldSchema type at the
// boundary where external data enters the system.
const (
	KindText   ValueKind = "text"
	KindList   ValueKind = "list"
	KindObject ValueKind = "object"
)

// Value is a tagged variant holding one field value. The zero Value is an
// empty text value.
type Value struct {
	kind   ValueKind
	text   string
	list   []string
	object map[string]string
}

// Text creates a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// List creates a list value.
func List(items ...string) Value {
	return Value{kind: KindList, list: items}
}

// Object creates an object value.
func Object(fields map[string]string) Value {
	return Value{kind: KindObject, object: fields}
}

// Kind returns the variant tag. The zero Value reports KindText.
func (v Value) Kind() ValueKind {
	if v.kind == "" {
		return KindText
	}
	return v.kind
}

// Text returns the text payload ("" for non-text values).
func (v Value) Text() string {
	return v.text
}

// List returns the list payload (nil for non-list values).
func (v Value) List() []string {
	return v.list
}

// Object returns the object payload (nil for non-object values).
func (v Value) Object() map[string]string {
	return v.object
}

// IsEmpty reports whether the value carries no content: empty text, empty
// list, list of only blank strings, or empty object.
func (v Value) IsEmpty() bool {
	switch v.Kind() {
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindList:
		for _, item := range v.list {
			if strings.TrimSpace(item) != "" {
				return false
			}
		}
		return true
	case KindObject:
		return len(v.object) == 0
	}
	return true
}

// String renders the value as display text: text as-is, lists joined with
// ", ", objects as sorted "key: value" pairs joined with "; ".
func (v Value) String() string {
	switch v.Kind() {
	case KindText:
		return v.text
	case KindList:
		nonEmpty := make([]string, 0, len(v.list))
		for _, item := range v.list {
			if strings.TrimSpace(item) != "" {
				nonEmpty = append(nonEmpty, item)
			}
		}
		return strings.Join(nonEmpty, ", ")
	case KindObject:
		keys := make([]string, 0, len(v.object))
		for k := range v.object {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s: %s", k, v.object[k]))
		}
		return strings.Join(pairs, "; ")
	}
	return ""
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	out := Value{kind: v.kind, text: v.text}
	if v.list != nil {
		out.list = make([]string, len(v.list))
		copy(out.list, v.list)
	}
	if v.object != nil {
		out.object = make(map[string]string, len(v.object))
		for k, val := range v.object {
			out.object[k] = val
		}
	}
	return out
}

// MarshalJSON encodes the value as its bare payload: a JSON string for
// text, an array for lists, an object for objects.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind() {
	case KindList:
		if v.list == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.list)
	case KindObject:
		if v.object == nil {
			return json.Marshal(map[string]string{})
		}
		return json.Marshal(v.object)
	default:
		return json.Marshal(v.text)
	}
}

// UnmarshalJSON decodes a bare JSON payload into the matching variant.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = Text("")
		return nil
	}
	switch {
	case strings.HasPrefix(trimmed, "["):
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("failed to decode list value: %w", err)
		}
		*v = List(list...)
	case strings.HasPrefix(trimmed, "{"):
		var object map[string]string
		if err := json.Unmarshal(data, &object); err != nil {
			return fmt.Errorf("failed to decode object value: %w", err)
		}
		*v = Object(object)
	default:
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("failed to decode text value: %w", err)
		}
		*v = Text(text)
	}
	return nil
}

// ItemData maps field ids to their values for one section item.
type ItemData map[string]Value

// Clone returns a deep copy of the data map.
func (d ItemData) Clone() ItemData {
	if d == nil {
		return nil
	}
	out := make(ItemData, len(d))
	for k, v := range d {
		out[k] = v.Clone()
	}
	return out
}

// NonEmpty returns the field ids that carry non-empty values, sorted for
// deterministic iteration.
func (d ItemData) NonEmpty() []string {
	ids := make([]string, 0, len(d))
	for id, v := range d {
		if !v.IsEmpty() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
