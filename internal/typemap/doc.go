// Package typemap maps native type spellings onto the Dart type vocabulary.
//
// Mapping is a total function: Kotlin and Swift primitives and a short
// list of known collection spellings map exactly, anything list-shaped
// falls back to List<dynamic>, anything map-shaped to Map<String, dynamic>,
// and everything else to dynamic. Precise generic element types are not
// propagated through the fallbacks; that loss is deliberate.
package typemap
