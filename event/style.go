package event

import "fmt"

// ScalarStyle is the quoting treatment of a rendered scalar.
type ScalarStyle int

const (
	Plain ScalarStyle = iota
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
)

func (s ScalarStyle) String() string {
	switch s {
	case Plain:
		return "Plain"
	case SingleQuoted:
		return "SingleQuoted"
	case DoubleQuoted:
		return "DoubleQuoted"
	case Literal:
		return "Literal"
	case Folded:
		return "Folded"
	default:
		return "Unknown"
	}
}

// IsQuoted reports whether s is one of the quoted flow styles.
func (s ScalarStyle) IsQuoted() bool {
	return s == SingleQuoted || s == DoubleQuoted
}

// IsBlock reports whether s is a block scalar style.
func (s ScalarStyle) IsBlock() bool {
	return s == Literal || s == Folded
}

func (s ScalarStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ScalarStyle) UnmarshalText(d []byte) error {
	ps, err := ParseScalarStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

func ParseScalarStyle(v string) (ScalarStyle, error) {
	s, ok := map[string]ScalarStyle{
		"Plain":        Plain,
		"SingleQuoted": SingleQuoted,
		"DoubleQuoted": DoubleQuoted,
		"Literal":      Literal,
		"Folded":       Folded,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown scalar style %q", v)
}

// CollectionStyle is the layout of a mapping or sequence.
type CollectionStyle int

const (
	// Block is indentation based layout.
	Block CollectionStyle = iota
	// Flow is delimiter based layout: {a: 1} and [1, 2].
	Flow
)

func (s CollectionStyle) String() string {
	switch s {
	case Block:
		return "Block"
	case Flow:
		return "Flow"
	default:
		return "Unknown"
	}
}

func (s CollectionStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *CollectionStyle) UnmarshalText(d []byte) error {
	ps, err := ParseCollectionStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

func ParseCollectionStyle(v string) (CollectionStyle, error) {
	switch v {
	case "Block":
		return Block, nil
	case "Flow":
		return Flow, nil
	}
	return 0, fmt.Errorf("unknown collection style %q", v)
}

// Kind identifies the six event kinds.
type Kind int

const (
	AliasKind Kind = iota
	ScalarKind
	MappingStartKind
	MappingEndKind
	SequenceStartKind
	SequenceEndKind
)

func (k Kind) String() string {
	switch k {
	case AliasKind:
		return "Alias"
	case ScalarKind:
		return "Scalar"
	case MappingStartKind:
		return "MappingStart"
	case MappingEndKind:
		return "MappingEnd"
	case SequenceStartKind:
		return "SequenceStart"
	case SequenceEndKind:
		return "SequenceEnd"
	default:
		return "Unknown"
	}
}
