package emit

import (
	"fmt"
	"strings"

	"github.com/signadot/jsonemit/event"
)

// Describe returns a one line rendering of an event descriptor, for logs
// and test expectations. Other values are rendered with %v.
func Describe(ev any) string {
	var b strings.Builder
	switch e := ev.(type) {
	case event.Alias:
		fmt.Fprintf(&b, "Alias(*%s", e.Name())
		if e.NeedsExpansion() {
			b.WriteString(" expand")
		}
		b.WriteString(")")
	case event.Scalar:
		fmt.Fprintf(&b, "Scalar(%s %q", e.Style(), e.RenderedValue())
		props(&b, e.Anchor(), e.Tag())
		b.WriteString(")")
	case event.MappingStart:
		fmt.Fprintf(&b, "MappingStart(%s", e.Style())
		props(&b, e.Anchor(), e.Tag())
		b.WriteString(")")
	case event.MappingEnd:
		b.WriteString("MappingEnd")
	case event.SequenceStart:
		fmt.Fprintf(&b, "SequenceStart(%s", e.Style())
		props(&b, e.Anchor(), e.Tag())
		b.WriteString(")")
	case event.SequenceEnd:
		b.WriteString("SequenceEnd")
	default:
		fmt.Fprintf(&b, "%v", ev)
	}
	return b.String()
}

func props(b *strings.Builder, a event.AnchorName, t event.TagName) {
	if a != "" {
		fmt.Fprintf(b, " &%s", a)
	}
	if t != "" {
		fmt.Fprintf(b, " !<%s>", t)
	}
}
