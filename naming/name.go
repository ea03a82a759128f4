package naming

import (
	"errors"
	"fmt"
)

// Name identifies one of the package conventions by name, for use in
// configuration and flags.
type Name int

const (
	NullName Name = iota
	CamelName
	PascalName
	HyphenatedName
	UnderscoredName
	LowerCaseName
)

var ErrBadName = errors.New("bad naming convention")

func ParseName(v string) (Name, error) {
	n, ok := map[string]Name{
		"":            NullName,
		"null":        NullName,
		"none":        NullName,
		"camel":       CamelName,
		"pascal":      PascalName,
		"hyphenated":  HyphenatedName,
		"kebab":       HyphenatedName,
		"underscored": UnderscoredName,
		"snake":       UnderscoredName,
		"lower":       LowerCaseName,
		"lowercase":   LowerCaseName,
	}[v]
	if ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadName, v)
}

func (n Name) String() string {
	d, err := n.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (n Name) MarshalText() ([]byte, error) {
	switch n {
	case NullName:
		return []byte("null"), nil
	case CamelName:
		return []byte("camel"), nil
	case PascalName:
		return []byte("pascal"), nil
	case HyphenatedName:
		return []byte("hyphenated"), nil
	case UnderscoredName:
		return []byte("underscored"), nil
	case LowerCaseName:
		return []byte("lower"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a naming convention>", n)
	}
}

func (n *Name) UnmarshalText(d []byte) error {
	pn, err := ParseName(string(d))
	if err != nil {
		return err
	}
	*n = pn
	return nil
}

// Convention returns the convention named by n. Unknown names map to Null.
func (n Name) Convention() Convention {
	switch n {
	case CamelName:
		return Camel
	case PascalName:
		return Pascal
	case HyphenatedName:
		return Hyphenated
	case UnderscoredName:
		return Underscored
	case LowerCaseName:
		return LowerCase
	default:
		return Null
	}
}

// AllNames returns every convention name.
func AllNames() []Name {
	return []Name{NullName, CamelName, PascalName, HyphenatedName, UnderscoredName, LowerCaseName}
}
