package event

import "errors"

var (
	ErrNilSource  = errors.New("event source is nil")
	ErrEmptyAlias = errors.New("alias name is empty")
)

// AnchorName names an anchor; the empty name means no anchor.
type AnchorName string

// TagName is a type tag; the empty tag means none.
type TagName string

// Alias refers to a previously anchored node.
type Alias struct {
	source         Source
	name           AnchorName
	needsExpansion bool
}

func NewAlias(src Source, name AnchorName) (Alias, error) {
	if src == nil {
		return Alias{}, ErrNilSource
	}
	if name == "" {
		return Alias{}, ErrEmptyAlias
	}
	return Alias{source: src, name: name}, nil
}

func (a Alias) Source() Source   { return a.source }
func (a Alias) Name() AnchorName { return a.name }

// NeedsExpansion reports whether the aliased value must be emitted in full
// in place of the alias.
func (a Alias) NeedsExpansion() bool { return a.needsExpansion }

func (a Alias) WithNeedsExpansion(v bool) Alias {
	a.needsExpansion = v
	return a
}

// Scalar is a single rendered value.
type Scalar struct {
	source         Source
	anchor         AnchorName
	tag            TagName
	renderedValue  string
	style          ScalarStyle
	plainImplicit  bool
	quotedImplicit bool
}

// NewScalar returns a scalar with no rendered value yet and the source's
// preferred style.
func NewScalar(src Source) (Scalar, error) {
	if src == nil {
		return Scalar{}, ErrNilSource
	}
	return Scalar{source: src, style: src.ScalarStyle()}, nil
}

func (s Scalar) Source() Source        { return s.source }
func (s Scalar) Anchor() AnchorName    { return s.anchor }
func (s Scalar) Tag() TagName          { return s.tag }
func (s Scalar) RenderedValue() string { return s.renderedValue }
func (s Scalar) Style() ScalarStyle    { return s.style }

// IsPlainImplicit reports whether the tag may be omitted when the scalar is
// written plain.
func (s Scalar) IsPlainImplicit() bool { return s.plainImplicit }

// IsQuotedImplicit reports whether the tag may be omitted when the scalar
// is written quoted.
func (s Scalar) IsQuotedImplicit() bool { return s.quotedImplicit }

func (s Scalar) WithAnchor(a AnchorName) Scalar {
	s.anchor = a
	return s
}

func (s Scalar) WithTag(t TagName) Scalar {
	s.tag = t
	return s
}

func (s Scalar) WithRenderedValue(v string) Scalar {
	s.renderedValue = v
	return s
}

func (s Scalar) WithStyle(st ScalarStyle) Scalar {
	s.style = st
	return s
}

func (s Scalar) WithPlainImplicit(v bool) Scalar {
	s.plainImplicit = v
	return s
}

func (s Scalar) WithQuotedImplicit(v bool) Scalar {
	s.quotedImplicit = v
	return s
}

// MappingStart opens a mapping.
type MappingStart struct {
	source   Source
	anchor   AnchorName
	tag      TagName
	implicit bool
	style    CollectionStyle
}

func NewMappingStart(src Source) (MappingStart, error) {
	if src == nil {
		return MappingStart{}, ErrNilSource
	}
	return MappingStart{source: src, implicit: true}, nil
}

func (m MappingStart) Source() Source         { return m.source }
func (m MappingStart) Anchor() AnchorName     { return m.anchor }
func (m MappingStart) Tag() TagName           { return m.tag }
func (m MappingStart) IsImplicit() bool       { return m.implicit }
func (m MappingStart) Style() CollectionStyle { return m.style }

func (m MappingStart) WithAnchor(a AnchorName) MappingStart {
	m.anchor = a
	return m
}

func (m MappingStart) WithTag(t TagName) MappingStart {
	m.tag = t
	return m
}

func (m MappingStart) WithImplicit(v bool) MappingStart {
	m.implicit = v
	return m
}

func (m MappingStart) WithStyle(st CollectionStyle) MappingStart {
	m.style = st
	return m
}

// MappingEnd closes the mapping opened with the same source.
type MappingEnd struct {
	source Source
}

func NewMappingEnd(src Source) (MappingEnd, error) {
	if src == nil {
		return MappingEnd{}, ErrNilSource
	}
	return MappingEnd{source: src}, nil
}

func (m MappingEnd) Source() Source { return m.source }

// SequenceStart opens a sequence.
type SequenceStart struct {
	source   Source
	anchor   AnchorName
	tag      TagName
	implicit bool
	style    CollectionStyle
}

func NewSequenceStart(src Source) (SequenceStart, error) {
	if src == nil {
		return SequenceStart{}, ErrNilSource
	}
	return SequenceStart{source: src, implicit: true}, nil
}

func (s SequenceStart) Source() Source         { return s.source }
func (s SequenceStart) Anchor() AnchorName     { return s.anchor }
func (s SequenceStart) Tag() TagName           { return s.tag }
func (s SequenceStart) IsImplicit() bool       { return s.implicit }
func (s SequenceStart) Style() CollectionStyle { return s.style }

func (s SequenceStart) WithAnchor(a AnchorName) SequenceStart {
	s.anchor = a
	return s
}

func (s SequenceStart) WithTag(t TagName) SequenceStart {
	s.tag = t
	return s
}

func (s SequenceStart) WithImplicit(v bool) SequenceStart {
	s.implicit = v
	return s
}

func (s SequenceStart) WithStyle(st CollectionStyle) SequenceStart {
	s.style = st
	return s
}

// SequenceEnd closes the sequence opened with the same source.
type SequenceEnd struct {
	source Source
}

func NewSequenceEnd(src Source) (SequenceEnd, error) {
	if src == nil {
		return SequenceEnd{}, ErrNilSource
	}
	return SequenceEnd{source: src}, nil
}

func (s SequenceEnd) Source() Source { return s.source }
