package extract

import "bridgegen/internal/model"

// Kotlin annotation and grammar spellings.
const (
	KotlinClassMarker   = "@BridgeClass"
	KotlinMemberMarker  = "@BridgeMethod"
	KotlinExcludeMarker = "@BridgeIgnore"
)

// NewKotlin returns the extractor for the Android (Kotlin) source tree.
//
// Exposure rules: a class annotated @BridgeClass exposes every fun except
// those annotated @BridgeIgnore or declared private/protected/internal;
// without the class annotation, only @BridgeMethod funs are exposed. A fun
// taking an EventChannel.EventSink parameter is always a subscription.
func NewKotlin() Extractor {
	return &extractor{g: grammar{
		origin:        model.OriginAndroid,
		ext:           ".kt",
		classMarker:   KotlinClassMarker,
		memberMarker:  KotlinMemberMarker,
		excludeMarker: KotlinExcludeMarker,
		memberKeyword: "fun",
		restricted:    []string{"private", "protected", "internal"},
		sinkTypes:     []string{"EventChannel.EventSink", "EventSink"},
		returnSep:     ":",
		defaultReturn: "Unit",
	}}
}
