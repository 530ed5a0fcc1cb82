package typemap

import "strings"

// Dart spellings of the target type vocabulary.
const (
	DartString  = "String"
	DartInt     = "int"
	DartDouble  = "double"
	DartBool    = "bool"
	DartVoid    = "void"
	DartDynamic = "dynamic"

	dartListDynamic = "List<dynamic>"
	dartMapDynamic  = "Map<String, dynamic>"
)

// primitives maps exact Kotlin and Swift primitive spellings onto the
// shared Dart vocabulary. Both platforms feed one table: their primitive
// spellings do not collide with conflicting meanings.
var primitives = map[string]string{
	// Kotlin
	"String":  DartString,
	"Int":     DartInt,
	"Long":    DartInt,
	"Float":   DartDouble,
	"Double":  DartDouble,
	"Boolean": DartBool,
	"Unit":    DartVoid,

	// Swift
	"Int32":   DartInt,
	"Int64":   DartInt,
	"CGFloat": DartDouble,
	"Bool":    DartBool,
	"Void":    DartVoid,
}

// collections maps the known generic collection spellings of both
// platforms onto typed Dart generics.
var collections = map[string]string{
	// Kotlin
	"List<String>":     "List<String>",
	"List<Int>":        "List<int>",
	"Map<String, Any>": dartMapDynamic,

	// Swift
	"[String]":       "List<String>",
	"[Int]":          "List<int>",
	"[String: Any]":  dartMapDynamic,
	"[String : Any]": dartMapDynamic,
}

// ToDart maps a native type spelling from either platform to its Dart
// spelling. It never fails: unrecognized list-shaped input becomes
// List<dynamic>, map-shaped input becomes Map<String, dynamic>, and
// anything else becomes dynamic.
func ToDart(sourceType string) string {
	t := strings.TrimSpace(sourceType)
	t = strings.TrimRight(t, "?!")
	t = strings.TrimSpace(t)

	if t == "" {
		return DartVoid
	}

	if dart, ok := primitives[t]; ok {
		return dart
	}

	if dart, ok := collections[t]; ok {
		return dart
	}

	switch {
	case strings.HasPrefix(t, "List<"), strings.HasPrefix(t, "MutableList<"),
		strings.HasPrefix(t, "Array<"), isSwiftArray(t):
		return dartListDynamic
	case strings.HasPrefix(t, "Map<"), strings.HasPrefix(t, "MutableMap<"),
		strings.HasPrefix(t, "Dictionary<"), strings.Contains(t, ":"):
		return dartMapDynamic
	}

	return DartDynamic
}

// isSwiftArray reports whether t is a Swift array literal spelling, i.e.
// bracketed without the key separator of a dictionary.
func isSwiftArray(t string) bool {
	return strings.HasPrefix(t, "[") && !strings.Contains(t, ":")
}
