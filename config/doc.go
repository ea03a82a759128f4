// Package config reads the jsonemit TOML configuration.
//
// # File
//
//	[output]
//	format = "json"     # yaml or json
//	indent = 2
//	compact = false
//	color = "auto"      # auto, always or never
//
//	[naming]
//	keys = "camel"      # null, camel, pascal, hyphenated, underscored, lower
//	enums = "hyphenated"
//
//	[values]
//	time-layout = "2006-01-02T15:04:05Z07:00"
//	utc = true
//	quote-enums = true
//
//	[serialize]
//	anchors = true
//	max-depth = 1000
//
// Missing keys keep their Default values. Command line flags override
// the file.
//
// # Related Packages
//
//   - github.com/signadot/jsonemit/serialize - Consumes SerializeOptions
package config
