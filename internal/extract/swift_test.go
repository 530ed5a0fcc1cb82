package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgegen/internal/model"
)

func TestSwift_WholeClassExposure(t *testing.T) {
	src := `
import Flutter
import UIKit

@objcMembers class Device: NSObject {

    func getModel() -> String {
        return UIDevice.current.model
    }

    @nonobjc
    func secret() -> String {
        return "hidden"
    }

    private func helper() -> Int {
        return 42
    }
}
`

	entities, diags := NewSwift().Extract(src)

	require.Len(t, entities, 1)
	assert.False(t, diags.HasErrors())

	device := entities[0]
	assert.Equal(t, "Device", device.Name)
	assert.Equal(t, model.OriginIOS, device.Origin)

	require.Len(t, device.Callables, 1)
	assert.Equal(t, "getModel", device.Callables[0].Name)
	assert.Equal(t, "String", device.Callables[0].ReturnType)
}

func TestSwift_AnnotationAboveClass(t *testing.T) {
	src := `
@objcMembers
class Clock: NSObject {

    func now() -> Int64 {
        return Int64(Date().timeIntervalSince1970)
    }
}
`

	entities, _ := NewSwift().Extract(src)

	require.Len(t, entities, 1)
	require.Len(t, entities[0].Callables, 1)
	assert.Equal(t, "now", entities[0].Callables[0].Name)
}

func TestSwift_SingleMemberExposure(t *testing.T) {
	src := `
class Telemetry: NSObject {

    @objc func ping() -> Bool {
        return true
    }

    func unmarked() -> String {
        return "not bridged"
    }
}
`

	entities, _ := NewSwift().Extract(src)

	require.Len(t, entities, 1)
	require.Len(t, entities[0].Callables, 1)
	assert.Equal(t, "ping", entities[0].Callables[0].Name)
}

func TestSwift_SubscriptionWithExternalLabel(t *testing.T) {
	src := `
class Battery: NSObject {

    func level(_ events: FlutterEventSink) {
        monitor.start(events)
    }
}
`

	entities, _ := NewSwift().Extract(src)

	require.Len(t, entities, 1)
	require.Len(t, entities[0].Callables, 1)

	sub := entities[0].Callables[0]
	assert.Equal(t, "level", sub.Name)
	assert.Equal(t, model.KindSubscription, sub.Kind)
	assert.Equal(t, "Void", sub.ReturnType)
	assert.Empty(t, sub.Params)
}

func TestSwift_ExternalLabelsKeepLastNameToken(t *testing.T) {
	src := `
@objcMembers class Files: NSObject {

    func write(to path: String, _ contents: String, events sink: FlutterEventSink) -> Bool {
        return true
    }
}
`

	entities, _ := NewSwift().Extract(src)

	require.Len(t, entities, 1)
	require.Len(t, entities[0].Callables, 1)

	c := entities[0].Callables[0]
	assert.Equal(t, model.KindSubscription, c.Kind)

	want := []model.Parameter{
		{Name: "path", SourceType: "String"},
		{Name: "contents", SourceType: "String"},
	}
	assert.Equal(t, want, c.Params)
}

func TestSwift_DictionaryParameterNotMisSplit(t *testing.T) {
	src := `
@objcMembers class Prefs: NSObject {

    func merge(_ values: [String: Any], replace: Bool) -> Void {
    }
}
`

	entities, _ := NewSwift().Extract(src)

	require.Len(t, entities, 1)

	want := []model.Parameter{
		{Name: "values", SourceType: "[String: Any]"},
		{Name: "replace", SourceType: "Bool"},
	}
	assert.Equal(t, want, entities[0].Callables[0].Params)
}

func TestSwift_DefaultReturnIsVoid(t *testing.T) {
	src := `
@objcMembers class Haptics: NSObject {

    func vibrate() {
        generator.impactOccurred()
    }
}
`

	entities, _ := NewSwift().Extract(src)

	require.Len(t, entities, 1)
	assert.Equal(t, "Void", entities[0].Callables[0].ReturnType)
}

func TestSwift_DroppedEmptyEntity(t *testing.T) {
	src := `
class Helper: NSObject {

    fileprivate func internalOnly() -> Int {
        return 0
    }
}
`

	entities, _ := NewSwift().Extract(src)

	assert.Empty(t, entities)
}
