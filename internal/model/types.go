package model

import "bridgegen/internal/common"

// Origin identifies which platform an entity was extracted from.
type Origin int

const (
	OriginUnknown Origin = iota
	OriginAndroid        // extracted from the Kotlin tree
	OriginIOS            // extracted from the Swift tree
	OriginUnified        // merged from both platforms
)

// String returns a human-readable representation of the Origin.
func (o Origin) String() string {
	switch o {
	case OriginAndroid:
		return "android"
	case OriginIOS:
		return "ios"
	case OriginUnified:
		return "unified"
	default:
		return common.UnknownStr
	}
}

// Kind represents the calling convention of a Callable.
//
// The set is closed: emission switches over it exhaustively, so adding a
// kind without teaching the emitter about it is a compile-visible change,
// not a silent mis-emission.
type Kind int

const (
	// KindCall is a single-shot request/response invocation.
	KindCall Kind = iota
	// KindSubscription is a continuous stream of values.
	KindSubscription
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindCall:
		return "call"
	case KindSubscription:
		return "subscription"
	default:
		return common.UnknownStr
	}
}

// Parameter is one name/type pair in a Callable's parameter list.
// Identity is positional: order determines positional binding at call time.
type Parameter struct {
	Name       string // parameter name as declared in native source
	SourceType string // raw native type spelling, mapped at emission time
}

// Callable describes one bridged member of an Entity.
type Callable struct {
	Name       string      // member name, unique within its Entity after merging
	ReturnType string      // raw native return type spelling
	Params     []Parameter // ordered; parameter names are unique within the list
	Kind       Kind
}

// TargetID returns the wire identifier for this callable within entity,
// the literal "<Entity>.<Callable>" concatenation the runtime dispatches on.
func (c Callable) TargetID(entity string) string {
	return entity + "." + c.Name
}

// Entity is one logical native class whose members are bridged.
type Entity struct {
	Name      string
	Callables []Callable // ordered; names unique after merging
	Origin    Origin
}

// Callable returns the callable with the given name, or nil if absent.
func (e *Entity) Callable(name string) *Callable {
	for i := range e.Callables {
		if e.Callables[i].Name == name {
			return &e.Callables[i]
		}
	}

	return nil
}
