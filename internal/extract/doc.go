// Package extract scans Kotlin and Swift source text for bridge-exposed
// classes and produces platform-scoped model entities.
//
// Both extractors share one scanning core parameterized by a platform
// grammar: the annotation spellings, the member keyword, the restricted
// visibility qualifiers, the return-type separator, and the event-sink
// type names. Extraction is a pure function of the file text; the
// directory walker feeds files to an extractor and concatenates results.
package extract
