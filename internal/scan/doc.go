// Package scan provides the low-level text scanning primitives shared by
// the platform extractors.
//
// The extractors do not parse Kotlin or Swift; they recognize a small
// surface grammar (annotations, class and member headers, parameter lists)
// and treat everything else as opaque text. The two load-bearing
// primitives live here so they can be tested in isolation:
//   - Body: balanced-delimiter body extraction by depth counting
//   - SplitTopLevel: separator splitting that ignores separators inside
//     any kind of open bracket
package scan
