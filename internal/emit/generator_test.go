package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgegen/internal/model"
)

func TestEmitter_DeviceScenario(t *testing.T) {
	entities := []model.Entity{
		{
			Name:   "Device",
			Origin: model.OriginUnified,
			Callables: []model.Callable{
				{Name: "getModel", ReturnType: "String", Kind: model.KindCall},
				{Name: "battery", ReturnType: "Void", Kind: model.KindSubscription},
			},
		},
	}

	emitter := NewEmitter(DefaultConfig())
	dart := emitter.Emit(entities)

	want := `// GENERATED CODE - do not modify by hand.
// Regenerate by running bridgegen against the native source trees.

import 'dart:async';

import 'package:flutter/services.dart';

/// Typed proxy for the native Device class.
class Device {
  Device._();

  static const MethodChannel _channel = MethodChannel('bridgegen');

  static Future<String?> getModel() {
    return _channel.invokeMethod<String>('Device.getModel');
  }

  static Stream<dynamic> battery() {
    const EventChannel channel = EventChannel('bridgegen/events/Device.battery');
    return channel.receiveBroadcastStream();
  }
}
`

	assert.Equal(t, want, dart)
}

func TestEmitter_PayloadShapes(t *testing.T) {
	entities := []model.Entity{
		{
			Name:   "Store",
			Origin: model.OriginAndroid,
			Callables: []model.Callable{
				{Name: "clear", ReturnType: "Unit", Kind: model.KindCall},
				{
					Name: "get", ReturnType: "String", Kind: model.KindCall,
					Params: []model.Parameter{{Name: "key", SourceType: "String"}},
				},
				{
					Name: "put", ReturnType: "Boolean", Kind: model.KindCall,
					Params: []model.Parameter{
						{Name: "key", SourceType: "String"},
						{Name: "value", SourceType: "Map<String, Any>"},
					},
				},
			},
		},
	}

	dart := NewEmitter(DefaultConfig()).Emit(entities)

	// zero params: no payload, and a void call is not wrapped as nullable
	assert.Contains(t, dart, "static Future<void> clear() {")
	assert.Contains(t, dart, "invokeMethod<void>('Store.clear');")

	// one param: the bare value
	assert.Contains(t, dart, "static Future<String?> get(String key) {")
	assert.Contains(t, dart, "invokeMethod<String>('Store.get', key);")

	// two or more params: name-keyed record in declaration order
	assert.Contains(t, dart, "static Future<bool?> put(String key, Map<String, dynamic> value) {")
	assert.Contains(t, dart, "invokeMethod<bool>('Store.put', <String, dynamic>{'key': key, 'value': value});")
}

func TestEmitter_SubscriptionWithParams(t *testing.T) {
	entities := []model.Entity{
		{
			Name:   "Sensors",
			Origin: model.OriginIOS,
			Callables: []model.Callable{
				{
					Name: "accelerometer", ReturnType: "Double", Kind: model.KindSubscription,
					Params: []model.Parameter{{Name: "intervalMs", SourceType: "Int"}},
				},
			},
		},
	}

	dart := NewEmitter(DefaultConfig()).Emit(entities)

	assert.Contains(t, dart, "static Stream<double> accelerometer(int intervalMs) {")
	assert.Contains(t, dart, "EventChannel('bridgegen/events/Sensors.accelerometer');")
	assert.Contains(t, dart, "receiveBroadcastStream(intervalMs).cast<double>();")
}

func TestEmitter_CustomChannelConfig(t *testing.T) {
	entities := []model.Entity{
		{
			Name:      "Clock",
			Origin:    model.OriginIOS,
			Callables: []model.Callable{{Name: "now", ReturnType: "Int64", Kind: model.KindCall}},
		},
	}

	dart := NewEmitter(Config{
		ChannelName:        "com.example/bridge",
		EventChannelPrefix: "com.example/bridge/streams/",
	}).Emit(entities)

	assert.Contains(t, dart, "MethodChannel('com.example/bridge');")
	assert.Contains(t, dart, "invokeMethod<int>('Clock.now');")
}

func TestEmitter_EmptyModel(t *testing.T) {
	dart := NewEmitter(DefaultConfig()).Emit(nil)

	assert.Contains(t, dart, "// GENERATED CODE")
	assert.NotContains(t, dart, "class ")
}

func TestEmitter_Deterministic(t *testing.T) {
	entities := []model.Entity{
		{
			Name:   "Device",
			Origin: model.OriginUnified,
			Callables: []model.Callable{
				{Name: "getModel", ReturnType: "String", Kind: model.KindCall},
				{Name: "battery", ReturnType: "Double", Kind: model.KindSubscription},
			},
		},
		{
			Name:      "Clock",
			Origin:    model.OriginIOS,
			Callables: []model.Callable{{Name: "now", ReturnType: "Int64", Kind: model.KindCall}},
		},
	}

	emitter := NewEmitter(DefaultConfig())

	first := emitter.Emit(entities)
	second := emitter.Emit(entities)

	require.Equal(t, first, second)

	// merger order is preserved: Device before Clock
	assert.Less(t, strings.Index(first, "class Device"), strings.Index(first, "class Clock"))
}
