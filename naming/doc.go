// Package naming translates identifiers between case conventions.
//
// A Convention maps an internal identifier to its rendered form with Apply
// and maps rendered text back with Reverse. The hyphen and the underscore
// are equivalent separators on input for every convention.
//
// # Usage
//
//	naming.Camel.Apply("this-is-a-test")      // "thisIsATest"
//	naming.Camel.Reverse("thisIsATest")       // "this_is_a_test"
//	naming.Underscored.Apply("ThisIsATest")   // "this_is_a_test"
//	naming.Underscored.Reverse("this_is_a_test") // "ThisIsATest"
//
//	c, err := naming.ParseName("kebab")
//	if err != nil {
//	    return err
//	}
//	c.Convention().Apply("maxRetries") // "max-retries"
//
// # Lossy conventions
//
// LowerCase drops word boundaries, so its Reverse can only restore the case
// of the first letter: LowerCase.Reverse(LowerCase.Apply("this-is-a-test"))
// is "Thisisatest".
//
// # Related Packages
//
//   - github.com/signadot/jsonemit/valuefmt - renders enum values through a Convention
//   - github.com/signadot/jsonemit/serialize - renames struct fields through a Convention
package naming
