package leptvalue

import "bytes"

// NotFound is returned by FindObjectIndex when no member has the given key.
const NotFound = -1

// SetObject frees v's existing payload and sets it to an empty Object,
// reserving room for at least capacity members up front.
func (v *Value) SetObject(capacity int) {
	v.free()
	v.typ = Object
	if capacity > 0 {
		v.obj = make([]Member, 0, capacity)
	}
}

// ObjectSize returns the number of members. Panics if v is not Object.
func (v *Value) ObjectSize() int {
	v.mustType(Object)
	return len(v.obj)
}

// ObjectCapacity returns the number of members the object can hold before
// its next growth. Panics if v is not Object.
func (v *Value) ObjectCapacity() int {
	v.mustType(Object)
	return cap(v.obj)
}

// ReserveObject ensures the object can hold at least capacity members
// without reallocating. Panics if v is not Object.
func (v *Value) ReserveObject(capacity int) {
	v.mustType(Object)
	if cap(v.obj) >= capacity {
		return
	}
	grown := make([]Member, len(v.obj), capacity)
	copy(grown, v.obj)
	v.obj = grown
}

// ShrinkObject releases any capacity beyond the object's current size.
// Panics if v is not Object.
func (v *Value) ShrinkObject() {
	v.mustType(Object)
	if len(v.obj) == cap(v.obj) {
		return
	}
	if len(v.obj) == 0 {
		v.obj = nil
		return
	}
	shrunk := make([]Member, len(v.obj))
	copy(shrunk, v.obj)
	v.obj = shrunk
}

// ClearObject frees every member's key and value, and empties the object
// without releasing its capacity. Panics if v is not Object.
func (v *Value) ClearObject() {
	v.mustType(Object)
	for i := range v.obj {
		v.obj[i].Key = nil
		v.obj[i].Value.free()
	}
	v.obj = v.obj[:0]
}

// ObjectKey returns the key bytes at index. Panics if v is not Object or
// index is out of range.
func (v *Value) ObjectKey(index int) []byte {
	v.mustType(Object)
	return v.obj[index].Key
}

// ObjectKeyLen returns the byte length of the key at index. Panics if v is
// not Object or index is out of range.
func (v *Value) ObjectKeyLen(index int) int {
	v.mustType(Object)
	return len(v.obj[index].Key)
}

// ObjectValue returns a pointer to the value at index. The pointer is
// invalidated by any later call that grows the object past its capacity.
// Panics if v is not Object or index is out of range.
func (v *Value) ObjectValue(index int) *Value {
	v.mustType(Object)
	return &v.obj[index].Value
}

// FindObjectIndex returns the index of the first member with the given key,
// or NotFound. Duplicate keys resolve to their first occurrence. Panics if
// v is not Object.
func (v *Value) FindObjectIndex(key []byte) int {
	v.mustType(Object)
	for i := range v.obj {
		if bytes.Equal(v.obj[i].Key, key) {
			return i
		}
	}
	return NotFound
}

// FindObjectValue returns a pointer to the first value with the given key,
// or nil if absent. Panics if v is not Object.
func (v *Value) FindObjectValue(key []byte) *Value {
	idx := v.FindObjectIndex(key)
	if idx == NotFound {
		return nil
	}
	return &v.obj[idx].Value
}

// SetObjectValue appends a new member with the given key (copied) and a
// Null value, returning a pointer to the value for the caller to populate.
// It does not check for an existing member with the same key — callers that
// want upsert semantics should FindObjectValue first. Panics if v is not
// Object.
func (v *Value) SetObjectValue(key []byte) *Value {
	v.mustType(Object)
	if len(v.obj) == cap(v.obj) {
		grown := make([]Member, len(v.obj), growCapacity(cap(v.obj)))
		copy(grown, v.obj)
		v.obj = grown
	}
	k := make([]byte, len(key))
	copy(k, key)
	v.obj = append(v.obj, Member{Key: k})
	return &v.obj[len(v.obj)-1].Value
}

// RemoveObjectValue frees and removes the member at index, shifting later
// members down. Panics if v is not Object or index is out of range.
func (v *Value) RemoveObjectValue(index int) {
	v.mustType(Object)
	v.obj[index].Key = nil
	v.obj[index].Value.free()
	v.obj = append(v.obj[:index], v.obj[index+1:]...)
}
