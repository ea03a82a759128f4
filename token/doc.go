// Package token decides how scalar text is written: which strings can be
// written plain, which need quotes, and how to quote them.
//
// Quote produces double-quoted text that is valid in both YAML and JSON.
// SingleQuote produces YAML single-quoted text.
package token
