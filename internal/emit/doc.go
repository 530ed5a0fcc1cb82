// Package emit renders the merged entity model into Dart proxy source.
//
// Emission is templated, deterministic, and total: the same entity list
// always produces byte-identical output, and an empty list produces a
// valid file with zero proxy classes. Entities are emitted in merger
// order, callables in entity order.
package emit
