package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Events  bool
	Scalars bool
	Walk    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Events = boolEnv("JSONEMIT_DEBUG_EVENTS")
	d.Scalars = boolEnv("JSONEMIT_DEBUG_SCALARS")
	d.Walk = boolEnv("JSONEMIT_DEBUG_WALK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Events reports whether every emitted event is traced.
func Events() bool {
	return d.Events
}

// Scalars reports whether scalar events are dumped in full.
func Scalars() bool {
	return d.Scalars
}

// Walk reports whether the serializer logs anchor assignment.
func Walk() bool {
	return d.Walk
}

// Set overrides the switches read from the environment. It returns a
// function restoring the previous values.
func Set(events, scalars, walk bool) func() {
	prev := *d
	d.Events, d.Scalars, d.Walk = events, scalars, walk
	return func() { *d = prev }
}
