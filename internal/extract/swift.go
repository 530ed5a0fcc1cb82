package extract

import "bridgegen/internal/model"

// Swift attribute spellings. Exposure piggybacks on the Objective-C
// bridging attributes the iOS side already needs for channel dispatch.
const (
	SwiftClassMarker   = "@objcMembers"
	SwiftMemberMarker  = "@objc"
	SwiftExcludeMarker = "@nonobjc"
)

// NewSwift returns the extractor for the iOS (Swift) source tree.
//
// Exposure rules: an @objcMembers class exposes every func except those
// marked @nonobjc or declared private/fileprivate; otherwise only @objc
// funcs are exposed. A func taking a FlutterEventSink parameter is always
// a subscription.
func NewSwift() Extractor {
	return &extractor{g: grammar{
		origin:        model.OriginIOS,
		ext:           ".swift",
		classMarker:   SwiftClassMarker,
		memberMarker:  SwiftMemberMarker,
		excludeMarker: SwiftExcludeMarker,
		memberKeyword: "func",
		restricted:    []string{"private", "fileprivate"},
		sinkTypes:     []string{"FlutterEventSink"},
		returnSep:     "->",
		defaultReturn: "Void",
	}}
}
