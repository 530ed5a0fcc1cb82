package emit

import "text/template"

// fileData holds all data needed for the Dart file template.
type fileData struct {
	Classes []classData
}

// classData represents one generated proxy class.
type classData struct {
	Name        string
	ChannelName string
	Methods     []methodData
}

// methodData represents one generated proxy method, with every Dart
// fragment precomputed so the template stays purely structural.
type methodData struct {
	Name           string
	IsSubscription bool
	ReturnDecl     string // e.g. "Future<String?>" or "Stream<double>"
	ParamsDecl     string // e.g. "String mode, int retries"
	InvokeType     string // type argument to invokeMethod
	TargetID       string // "Entity.callable"
	ChannelID      string // subscription channel identifier
	PayloadArg     string // ", mode" / ", <String, dynamic>{...}" / ""
	PayloadExpr    string // PayloadArg without the leading separator
	CastSuffix     string // ".cast<double>()" or ""
}

var dartFileTemplate = template.Must(template.New("dartFile").Parse(
	`// GENERATED CODE - do not modify by hand.
// Regenerate by running bridgegen against the native source trees.

import 'dart:async';

import 'package:flutter/services.dart';
{{range .Classes}}
/// Typed proxy for the native {{.Name}} class.
class {{.Name}} {
  {{.Name}}._();

  static const MethodChannel _channel = MethodChannel('{{.ChannelName}}');
{{range .Methods}}{{if .IsSubscription}}
  static {{.ReturnDecl}} {{.Name}}({{.ParamsDecl}}) {
    const EventChannel channel = EventChannel('{{.ChannelID}}');
    return channel.receiveBroadcastStream({{.PayloadExpr}}){{.CastSuffix}};
  }
{{else}}
  static {{.ReturnDecl}} {{.Name}}({{.ParamsDecl}}) {
    return _channel.invokeMethod<{{.InvokeType}}>('{{.TargetID}}'{{.PayloadArg}});
  }
{{end}}{{end}}}
{{end}}`))
