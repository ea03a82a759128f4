package valuefmt

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/signadot/jsonemit/naming"
)

// ValueFormatter renders values whose type has already been classified by
// the caller.
type ValueFormatter interface {
	FormatBoolean(v any) string
	FormatNumber(v any) string
	FormatEnum(v any, nc naming.Convention) string
	FormatDateTime(v any) string
	FormatTimeInterval(v any) string
	// ShouldQuoteEnum reports whether the rendered enum needs quotes.
	ShouldQuoteEnum(v any) bool
}

type Option func(*Formatter)

// WithTimeLayout sets the layout used by FormatDateTime.
func WithTimeLayout(layout string) Option {
	return func(f *Formatter) { f.timeLayout = layout }
}

// WithUTC converts times to UTC before formatting.
func WithUTC(v bool) Option {
	return func(f *Formatter) { f.utc = v }
}

// WithEnumQuoting replaces the ShouldQuoteEnum predicate.
func WithEnumQuoting(fn func(any) bool) Option {
	return func(f *Formatter) { f.quoteEnum = fn }
}

// Formatter is the default ValueFormatter. It holds no mutable state and
// may be shared.
type Formatter struct {
	timeLayout string
	utc        bool
	quoteEnum  func(any) bool
}

var _ ValueFormatter = (*Formatter)(nil)

func New(opts ...Option) *Formatter {
	f := &Formatter{
		timeLayout: time.RFC3339Nano,
		quoteEnum:  func(any) bool { return true },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Formatter) FormatBoolean(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Bool {
		return fmt.Sprint(v)
	}
	return strconv.FormatBool(rv.Bool())
}

func (f *Formatter) FormatNumber(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(x float64, bits int) string {
	switch {
	case math.IsNaN(x):
		return ".nan"
	case math.IsInf(x, 1):
		return ".inf"
	case math.IsInf(x, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(x, 'g', -1, bits)
}

// FormatEnum renders the enum's String form through nc. Values that are
// not fmt.Stringers are rendered as numbers.
func (f *Formatter) FormatEnum(v any, nc naming.Convention) string {
	s, ok := v.(fmt.Stringer)
	if !ok {
		return f.FormatNumber(v)
	}
	if nc == nil {
		nc = naming.Null
	}
	return nc.Apply(s.String())
}

func (f *Formatter) FormatDateTime(v any) string {
	t, ok := v.(time.Time)
	if !ok {
		return fmt.Sprint(v)
	}
	if f.utc {
		t = t.UTC()
	}
	return t.Format(f.timeLayout)
}

func (f *Formatter) FormatTimeInterval(v any) string {
	d, ok := v.(time.Duration)
	if !ok {
		return fmt.Sprint(v)
	}
	return d.String()
}

func (f *Formatter) ShouldQuoteEnum(v any) bool {
	return f.quoteEnum(v)
}

var (
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	durationType = reflect.TypeOf(time.Duration(0))
)

// IsEnum reports whether t is an enumeration: a named integer type declared
// in a package that implements fmt.Stringer. time.Duration is not an enum.
func IsEnum(t reflect.Type) bool {
	if t == nil || t == durationType || t.Name() == "" || t.PkgPath() == "" {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return false
	}
	return t.Implements(stringerType)
}
