// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"reflect"

	"github.com/jinzhu/copier"
)

// Clone creates and returns a deep copy of the tree from this node down.
// Only children linked into the child lists are copied. The clone is a
// root: it has no parent and no siblings, whatever the source had.
// Values are deep copied with [copier], so unexported struct fields of
// values are not copied. If a value can not be copied, the error is
// logged and the clone shares the source value.
func (n *Node[T]) Clone() *Node[T] {
	nc := NewRoot(n.name, copyValue(n.value))
	copyChildren(nc, n)
	return nc
}

// copyChildren copies the children of from into to, which must have none.
func copyChildren[T any](to, from *Node[T]) {
	var last *Node[T]
	for kid := range from.children.All() {
		kc := to.NewSubNode(kid.name, copyValue(kid.value))
		if last == nil {
			to.children.first = kc
		} else {
			last.next = kc
		}
		last = kc
		copyChildren(kc, kid)
	}
}

// copyValue returns a deep copy of the given value.
func copyValue[T any](v T) T {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() { // nil interface
		return v
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return v
		}
	}
	opt := copier.Option{CaseSensitive: true, DeepCopy: true}
	if rv.Kind() == reflect.Pointer {
		// copy the pointee into a new allocation of the same type
		dst := reflect.New(rv.Type().Elem())
		if err := copier.CopyWithOption(dst.Interface(), rv.Elem().Interface(), opt); err != nil {
			slog.Error("tree.Node.Clone", "err", err)
			return v
		}
		cv, ok := dst.Interface().(T)
		if !ok {
			return v
		}
		return cv
	}
	dst := reflect.New(rv.Type())
	if err := copier.CopyWithOption(dst.Interface(), v, opt); err != nil {
		slog.Error("tree.Node.Clone", "err", err)
		return v
	}
	cv, ok := dst.Elem().Interface().(T)
	if !ok {
		return v
	}
	return cv
}
