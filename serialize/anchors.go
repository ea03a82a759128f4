package serialize

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/signadot/jsonemit/debug"
	"github.com/signadot/jsonemit/event"
)

// ref identifies a pointer, map or slice by what it refers to. Slices
// sharing a backing array are the same ref only with the same length.
type ref struct {
	kind reflect.Kind
	typ  reflect.Type
	ptr  uintptr
	n    int
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// refOf returns the identity of v, if v is a non nil, non empty
// reference worth an anchor.
func refOf(v reflect.Value) (ref, bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() || v.Type().Elem().Size() == 0 || v.Type().Implements(textMarshalerType) {
			return ref{}, false
		}
		return ref{kind: reflect.Pointer, typ: v.Type(), ptr: v.Pointer()}, true
	case reflect.Map:
		if v.IsNil() || v.Len() == 0 {
			return ref{}, false
		}
		return ref{kind: reflect.Map, typ: v.Type(), ptr: v.Pointer()}, true
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 || v.Type().Elem().Size() == 0 {
			return ref{}, false
		}
		return ref{kind: reflect.Slice, typ: v.Type(), ptr: v.Pointer(), n: v.Len()}, true
	}
	return ref{}, false
}

// assignAnchors walks v once and names every ref reached more than once,
// o1, o2, ... in the order refs are first reached.
func (w *walker) assignAnchors(v reflect.Value) {
	counts := map[ref]int{}
	paths := map[ref]string{}
	var order []ref
	var visit func(v reflect.Value, path string, depth int)
	visit = func(v reflect.Value, path string, depth int) {
		if depth > w.opts.maxDepth || !v.IsValid() {
			return
		}
		for v.Kind() == reflect.Interface {
			if v.IsNil() {
				return
			}
			v = v.Elem()
		}
		if r, ok := refOf(v); ok {
			counts[r]++
			if counts[r] > 1 {
				return
			}
			order = append(order, r)
			paths[r] = path
		}
		switch v.Kind() {
		case reflect.Pointer:
			if !v.IsNil() {
				visit(v.Elem(), path, depth+1)
			}
		case reflect.Map:
			iter := v.MapRange()
			for iter.Next() {
				visit(iter.Value(), joinKey(path, fmt.Sprint(iter.Key())), depth+1)
			}
		case reflect.Slice, reflect.Array:
			if v.Type().Elem().Kind() == reflect.Uint8 {
				return
			}
			for i := 0; i < v.Len(); i++ {
				visit(v.Index(i), joinIndex(path, i), depth+1)
			}
		case reflect.Struct:
			fs, err := w.s.fields(v.Type())
			if err != nil {
				return
			}
			for _, f := range fs {
				visit(fieldByIndex(v, f.index), joinKey(path, f.name), depth+1)
			}
		}
	}
	visit(v, "", 0)
	for _, r := range order {
		if counts[r] < 2 {
			continue
		}
		name := event.AnchorName(fmt.Sprintf("o%d", len(w.anchors)+1))
		w.anchors[r] = name
		if debug.Walk() {
			debug.Logf("anchor %s: %s at %q reached %d times\n", name, r.typ, paths[r], counts[r])
		}
	}
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func joinIndex(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
