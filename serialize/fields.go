package serialize

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/signadot/jsonemit/event"
)

// field is a serialized struct field, possibly promoted from an embedded
// struct.
type field struct {
	index     []int
	name      string
	omitEmpty bool
	flow      bool
	style     event.ScalarStyle
}

// parseTag parses an `emit:"name,opt,..."` tag. The options are omitempty,
// flow, literal, folded, single and double.
func parseTag(tag string) (string, field, error) {
	parts := strings.Split(tag, ",")
	var f field
	for _, p := range parts[1:] {
		switch p {
		case "omitempty":
			f.omitEmpty = true
		case "flow":
			f.flow = true
		case "literal":
			f.style = event.Literal
		case "folded":
			f.style = event.Folded
		case "single":
			f.style = event.SingleQuoted
		case "double":
			f.style = event.DoubleQuoted
		case "":
		default:
			return "", f, fmt.Errorf("unknown emit tag option %q", p)
		}
	}
	return parts[0], f, nil
}

// fields returns the serialized fields of struct type t in declaration
// order, with embedded structs flattened.
func (s *Serializer) fields(t reflect.Type) ([]field, error) {
	if fs, ok := s.fieldCache.Load(t); ok {
		return fs.([]field), nil
	}
	var res []field
	seen := map[string]bool{}
	if err := s.collectFields(t, nil, seen, &res); err != nil {
		return nil, err
	}
	s.fieldCache.Store(t, res)
	return res, nil
}

func (s *Serializer) collectFields(t reflect.Type, index []int, seen map[string]bool, res *[]field) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("emit")
		if tag == "-" {
			continue
		}
		name, f, err := parseTag(tag)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", t, sf.Name, err)
		}
		idx := append(append([]int(nil), index...), i)
		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if err := s.collectFields(ft, idx, seen, res); err != nil {
					return err
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = s.opts.keyNaming.Apply(sf.Name)
		}
		if seen[name] {
			return fmt.Errorf("field name conflict: %s.%s is named %q like an earlier field", t, sf.Name, name)
		}
		seen[name] = true
		f.index = idx
		f.name = name
		*res = append(*res, f)
	}
	return nil
}

// fieldByIndex is reflect.Value.FieldByIndex returning an invalid value
// when an embedded pointer is nil.
func fieldByIndex(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
