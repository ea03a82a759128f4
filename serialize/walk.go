package serialize

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"

	"github.com/signadot/jsonemit/emit"
	"github.com/signadot/jsonemit/event"
)

// walker holds the state of one Emit call.
type walker struct {
	s    *Serializer
	opts *options
	e    emit.Emitter
	// anchors are assigned before the walk, written records the anchor
	// each ref was first emitted with and active holds the refs being
	// emitted.
	anchors map[ref]event.AnchorName
	written map[ref]event.AnchorName
	active  map[ref]bool
}

// hint carries styles requested by a struct field tag.
type hint struct {
	flow  bool
	style event.ScalarStyle
}

func (w *walker) fail(path string, err error) error {
	return &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
}

func (w *walker) value(v reflect.Value, path string, depth int, anchor event.AnchorName, h hint) error {
	if depth > w.opts.maxDepth {
		return &MarshalError{FieldPath: path, Message: fmt.Sprintf("more than %d levels", w.opts.maxDepth), Err: ErrMaxDepth}
	}
	if !v.IsValid() {
		return w.scalar(event.Describe(nil), anchor, path)
	}
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return w.scalar(event.DescribeAs(nil, v.Type(), event.Plain), anchor, path)
		}
		v = v.Elem()
	}
	r, isRef := refOf(v)
	if !isRef {
		return w.node(v, path, depth, anchor, h)
	}
	if name, ok := w.written[r]; ok {
		return w.alias(v, r, name, path, depth, h)
	}
	if w.active[r] {
		return &MarshalError{FieldPath: path, Message: fmt.Sprintf("circular reference to %s", v.Type())}
	}
	if a, ok := w.anchors[r]; ok {
		if anchor == "" {
			anchor = a
		}
		w.written[r] = anchor
	}
	w.active[r] = true
	defer delete(w.active, r)
	return w.node(v, path, depth, anchor, h)
}

// alias emits an alias to an already written ref, and the full value
// when the chain asks for expansion.
func (w *walker) alias(v reflect.Value, r ref, name event.AnchorName, path string, depth int, h hint) error {
	a, err := event.NewAlias(event.Describe(v.Interface()), name)
	if err != nil {
		return w.fail(path, err)
	}
	out, err := w.e.EmitAlias(a)
	if err != nil {
		return w.fail(path, err)
	}
	if !out.NeedsExpansion() {
		return nil
	}
	if w.active[r] {
		return &MarshalError{FieldPath: path, Message: fmt.Sprintf("circular reference to %s cannot be expanded", v.Type())}
	}
	w.active[r] = true
	defer delete(w.active, r)
	return w.node(v, path, depth, "", h)
}

func (w *walker) node(v reflect.Value, path string, depth int, anchor event.AnchorName, h hint) error {
	typ := v.Type()
	if typ.Kind() == reflect.Pointer {
		if v.IsNil() {
			return w.scalar(event.DescribeAs(nil, typ, h.style), anchor, path)
		}
		return w.value(v.Elem(), path, depth+1, anchor, h)
	}
	if emit.Classify(typ) != emit.TypeUnsupported {
		return w.scalar(event.DescribeAs(v.Interface(), typ, h.style), anchor, path)
	}
	if text, ok, err := marshalText(v); ok {
		if err != nil {
			return w.fail(path, err)
		}
		return w.scalar(event.DescribeAs(text, reflect.TypeOf(text), h.style), anchor, path)
	}
	switch typ.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return w.scalar(event.DescribeAs(nil, typ, event.Plain), anchor, path)
		}
		return w.mapping(v, path, depth, anchor, h)
	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() == reflect.Uint8 {
			break
		}
		if typ.Kind() == reflect.Slice && v.IsNil() {
			return w.scalar(event.DescribeAs(nil, typ, event.Plain), anchor, path)
		}
		return w.sequence(v, path, depth, anchor, h)
	case reflect.Struct:
		return w.structure(v, path, depth, anchor, h)
	}
	// Byte strings and types without a rendering go to the chain, which
	// decides whether it can render them.
	return w.scalar(event.DescribeAs(v.Interface(), typ, h.style), anchor, path)
}

func marshalText(v reflect.Value) (string, bool, error) {
	var tm encoding.TextMarshaler
	switch {
	case v.Type().Implements(textMarshalerType):
		tm = v.Interface().(encoding.TextMarshaler)
	case v.CanAddr() && reflect.PointerTo(v.Type()).Implements(textMarshalerType):
		tm = v.Addr().Interface().(encoding.TextMarshaler)
	default:
		return "", false, nil
	}
	d, err := tm.MarshalText()
	return string(d), true, err
}

func (w *walker) scalar(src event.Source, anchor event.AnchorName, path string) error {
	sc, err := event.NewScalar(src)
	if err != nil {
		return w.fail(path, err)
	}
	if _, err := w.e.EmitScalar(sc.WithAnchor(anchor)); err != nil {
		return w.fail(path, err)
	}
	return nil
}

func collectionStyle(h hint) event.CollectionStyle {
	if h.flow {
		return event.Flow
	}
	return event.Block
}

func (w *walker) startMapping(v reflect.Value, path string, anchor event.AnchorName, h hint) (event.Source, error) {
	src := event.Describe(v.Interface())
	ms, err := event.NewMappingStart(src)
	if err != nil {
		return nil, w.fail(path, err)
	}
	if _, err := w.e.EmitMappingStart(ms.WithAnchor(anchor).WithStyle(collectionStyle(h))); err != nil {
		return nil, w.fail(path, err)
	}
	return src, nil
}

func (w *walker) endMapping(src event.Source, path string) error {
	me, err := event.NewMappingEnd(src)
	if err != nil {
		return w.fail(path, err)
	}
	if _, err := w.e.EmitMappingEnd(me); err != nil {
		return w.fail(path, err)
	}
	return nil
}

func (w *walker) mapping(v reflect.Value, path string, depth int, anchor event.AnchorName, h hint) error {
	src, err := w.startMapping(v, path, anchor, h)
	if err != nil {
		return err
	}
	keys := v.MapKeys()
	slices.SortFunc(keys, compareKeys)
	for _, k := range keys {
		kpath := joinKey(path, keyText(k))
		if err := w.value(k, kpath, depth+1, "", hint{}); err != nil {
			return err
		}
		if err := w.value(v.MapIndex(k), kpath, depth+1, "", hint{}); err != nil {
			return err
		}
	}
	return w.endMapping(src, path)
}

func (w *walker) structure(v reflect.Value, path string, depth int, anchor event.AnchorName, h hint) error {
	fs, err := w.s.fields(v.Type())
	if err != nil {
		return w.fail(path, err)
	}
	src, err := w.startMapping(v, path, anchor, h)
	if err != nil {
		return err
	}
	for _, f := range fs {
		fv := fieldByIndex(v, f.index)
		if !fv.IsValid() || (f.omitEmpty && isEmpty(fv)) {
			continue
		}
		fpath := joinKey(path, f.name)
		if err := w.scalar(event.Describe(f.name), "", fpath); err != nil {
			return err
		}
		if err := w.value(fv, fpath, depth+1, "", hint{flow: f.flow, style: f.style}); err != nil {
			return err
		}
	}
	return w.endMapping(src, path)
}

func (w *walker) sequence(v reflect.Value, path string, depth int, anchor event.AnchorName, h hint) error {
	src := event.Describe(v.Interface())
	ss, err := event.NewSequenceStart(src)
	if err != nil {
		return w.fail(path, err)
	}
	if _, err := w.e.EmitSequenceStart(ss.WithAnchor(anchor).WithStyle(collectionStyle(h))); err != nil {
		return w.fail(path, err)
	}
	for i := 0; i < v.Len(); i++ {
		if err := w.value(v.Index(i), joinIndex(path, i), depth+1, "", hint{style: h.style}); err != nil {
			return err
		}
	}
	se, err := event.NewSequenceEnd(src)
	if err != nil {
		return w.fail(path, err)
	}
	if _, err := w.e.EmitSequenceEnd(se); err != nil {
		return w.fail(path, err)
	}
	return nil
}

// keyText is the text map keys are sorted by, after integers which sort
// by value.
func keyText(k reflect.Value) string {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String()
	}
	if text, ok, err := marshalText(k); ok && err == nil {
		return text
	}
	return fmt.Sprint(k.Interface())
}

func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	}
	return cmp.Compare(keyText(a), keyText(b))
}
