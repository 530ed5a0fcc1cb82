package emit

import (
	"bytes"
	"fmt"
	"strings"

	"bridgegen/internal/model"
	"bridgegen/internal/typemap"
)

// Config holds configuration for Dart emission.
type Config struct {
	// ChannelName is the method channel every call goes through.
	ChannelName string
	// EventChannelPrefix is prepended to "<Entity>.<Callable>" to form
	// each subscription's event channel identifier.
	EventChannelPrefix string
}

// DefaultConfig returns the default emitter configuration.
func DefaultConfig() Config {
	return Config{
		ChannelName:        "bridgegen",
		EventChannelPrefix: "bridgegen/events/",
	}
}

// Emitter renders merged entities into Dart source text.
type Emitter struct {
	config Config
}

// NewEmitter creates a new Emitter with the given configuration.
func NewEmitter(config Config) *Emitter {
	return &Emitter{config: config}
}

// Emit renders the entity list into one Dart source file. It is total:
// an empty or nil list yields a valid file with zero proxy classes, and
// the same list always yields byte-identical output.
func (e *Emitter) Emit(entities []model.Entity) string {
	var data fileData

	for _, entity := range entities {
		data.Classes = append(data.Classes, e.buildClassData(entity))
	}

	var buf bytes.Buffer

	// The template is static and the data is plain values, so execution
	// cannot fail at runtime.
	_ = dartFileTemplate.Execute(&buf, data)

	return buf.String()
}

// buildClassData constructs the template data for one proxy class.
func (e *Emitter) buildClassData(entity model.Entity) classData {
	cls := classData{
		Name:        entity.Name,
		ChannelName: e.config.ChannelName,
	}

	for _, c := range entity.Callables {
		cls.Methods = append(cls.Methods, e.buildMethodData(entity.Name, c))
	}

	return cls
}

// buildMethodData constructs the template data for one proxy method.
func (e *Emitter) buildMethodData(entity string, c model.Callable) methodData {
	ret := typemap.ToDart(c.ReturnType)

	m := methodData{
		Name:       c.Name,
		ParamsDecl: paramsDecl(c.Params),
		TargetID:   c.TargetID(entity),
	}

	m.PayloadExpr = payloadExpr(c.Params)
	if m.PayloadExpr != "" {
		m.PayloadArg = ", " + m.PayloadExpr
	}

	switch c.Kind {
	case model.KindCall:
		m.ReturnDecl = futureDecl(ret)
		m.InvokeType = invokeType(ret)
	case model.KindSubscription:
		m.IsSubscription = true
		m.ChannelID = e.config.EventChannelPrefix + m.TargetID
		m.ReturnDecl, m.CastSuffix = streamDecl(ret)
	}

	return m
}

// futureDecl returns the Dart return declaration for a call method.
// Channel results are nullable, except that a void call must not be
// wrapped as nullable void.
func futureDecl(dart string) string {
	switch dart {
	case typemap.DartVoid:
		return "Future<void>"
	case typemap.DartDynamic:
		return "Future<dynamic>"
	default:
		return fmt.Sprintf("Future<%s?>", dart)
	}
}

// invokeType returns the type argument for invokeMethod.
func invokeType(dart string) string {
	if dart == typemap.DartVoid {
		return "void"
	}

	return dart
}

// streamDecl returns the Dart return declaration and cast suffix for a
// subscription method. Untypable streams stay Stream<dynamic>, which is
// what receiveBroadcastStream already produces.
func streamDecl(dart string) (decl, cast string) {
	if dart == typemap.DartVoid || dart == typemap.DartDynamic {
		return "Stream<dynamic>", ""
	}

	return fmt.Sprintf("Stream<%s>", dart), fmt.Sprintf(".cast<%s>()", dart)
}

// paramsDecl renders the Dart parameter declarations in native order.
func paramsDecl(params []model.Parameter) string {
	var parts []string

	for _, p := range params {
		parts = append(parts, typemap.ToDart(p.SourceType)+" "+p.Name)
	}

	return strings.Join(parts, ", ")
}

// payloadExpr renders the transport payload for a parameter list: no
// payload for zero parameters, the bare value for one, and a name-keyed
// record for two or more.
func payloadExpr(params []model.Parameter) string {
	switch len(params) {
	case 0:
		return ""
	case 1:
		return params[0].Name
	}

	var sb strings.Builder

	sb.WriteString("<String, dynamic>{")

	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "'%s': %s", p.Name, p.Name)
	}

	sb.WriteString("}")

	return sb.String()
}
