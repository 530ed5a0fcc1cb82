package extract

import (
	"strings"

	"bridgegen/internal/common"
	"bridgegen/internal/diagnostic"
	"bridgegen/internal/model"
	"bridgegen/internal/scan"
)

// Extractor recognizes bridge-exposed declarations in one platform's
// source text.
type Extractor interface {
	// Origin identifies the platform this extractor scans for.
	Origin() model.Origin
	// Ext returns the file extension the platform uses, e.g. ".kt".
	Ext() string
	// Extract scans one file's text and returns the exposed entities.
	// Classes with zero exposed callables are dropped, not returned empty.
	Extract(src string) ([]model.Entity, diagnostic.Diagnostics)
}

// grammar captures the per-platform surface grammar the shared scanner
// needs. Everything outside these markers is treated as opaque text.
type grammar struct {
	origin        model.Origin
	ext           string
	classMarker   string   // whole-class exposure annotation
	memberMarker  string   // single-member exposure annotation
	excludeMarker string   // member exclusion annotation
	memberKeyword string   // "fun" or "func"
	restricted    []string // visibility qualifiers that block exposure
	sinkTypes     []string // parameter types marking a subscription
	returnSep     string   // ":" or "->"
	defaultReturn string   // spelling used when no return clause is present
}

// extractor is the shared scanning core behind both platform extractors.
type extractor struct {
	g grammar
}

// Origin implements Extractor.
func (x *extractor) Origin() model.Origin { return x.g.origin }

// Ext implements Extractor.
func (x *extractor) Ext() string { return x.g.ext }

// Extract implements Extractor.
func (x *extractor) Extract(src string) ([]model.Entity, diagnostic.Diagnostics) {
	var (
		entities []model.Entity
		diags    diagnostic.Diagnostics
	)

	for _, cls := range x.classes(src) {
		entity, d := x.extractClass(src, cls)
		diags.Merge(d)

		if entity != nil {
			entities = append(entities, *entity)
		}
	}

	return entities, diags
}

// classDecl locates one class declaration inside a source file.
type classDecl struct {
	name      string
	declStart int    // offset of the "class" keyword
	body      string // balanced body text
	balanced  bool
}

// classes finds every class declaration in src and extracts its body by
// balanced-delimiter scanning.
func (x *extractor) classes(src string) []classDecl {
	var decls []classDecl

	for at := 0; at < len(src); {
		i := indexWord(src[at:], "class")
		if i < 0 {
			break
		}

		declStart := at + i
		after := declStart + len("class")

		name, rest := ident(src[after:])
		if name == "" {
			at = after
			continue
		}

		open := headerOpenBrace(src, after+rest)
		if open < 0 {
			at = after
			continue
		}

		body, end, ok := scan.Body(src, open+1)
		decls = append(decls, classDecl{
			name:      name,
			declStart: declStart,
			body:      body,
			balanced:  ok,
		})

		at = end
	}

	return decls
}

// extractClass applies the exposure rules to one class declaration.
// It returns nil when the class exposes nothing.
func (x *extractor) extractClass(src string, cls classDecl) (*model.Entity, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if !cls.balanced {
		diags.AddWarning(diagnostic.CodeUnbalancedBody,
			"unbalanced braces, body capture ran to end of file", cls.name, "")
	}

	wholeClass := x.classExposed(src, cls.declStart)

	var callables []model.Callable

	for _, m := range x.members(cls.body) {
		c, include := x.classify(m, wholeClass)
		if include {
			callables = append(callables, c)
		}
	}

	if len(callables) == 0 {
		return nil, diags
	}

	return &model.Entity{
		Name:      cls.name,
		Callables: callables,
		Origin:    x.g.origin,
	}, diags
}

// classExposed reports whether the class carries the whole-class exposure
// marker, either on the lines above the declaration or inline among the
// modifiers on the declaration line itself.
func (x *extractor) classExposed(src string, declStart int) bool {
	for _, ann := range scan.LeadingAnnotations(src, declStart) {
		if ann == x.g.classMarker {
			return true
		}
	}

	line := src[scan.LineStart(src, declStart):declStart]

	return hasToken(line, x.g.classMarker)
}

// member is one captured member header, before exposure classification.
type member struct {
	name       string
	returnType string
	params     []model.Parameter
	sink       bool     // had an event-sink parameter (now stripped)
	modifiers  []string // tokens on the header line before the keyword
	anns       []string // annotations on the lines above the header
}

// members enumerates the member headers of a class body. After each
// header the scan jumps past the member's balanced body, so functions
// nested inside bodies are not enumerated as members.
func (x *extractor) members(body string) []member {
	var out []member

	for at := 0; at < len(body); {
		i := indexWord(body[at:], x.g.memberKeyword)
		if i < 0 {
			break
		}

		kwStart := at + i
		after := kwStart + len(x.g.memberKeyword)

		m, next, ok := x.parseMember(body, kwStart, after)
		if !ok {
			at = after
			continue
		}

		out = append(out, m)
		at = next
	}

	return out
}

// parseMember captures one member signature starting at the member
// keyword. It returns the offset to resume scanning from, which is past
// the member's body when it has one.
func (x *extractor) parseMember(body string, kwStart, after int) (member, int, bool) {
	name, n := ident(body[after:])
	if name == "" {
		return member{}, 0, false
	}

	open := strings.IndexByte(body[after+n:], '(')
	if open < 0 {
		return member{}, 0, false
	}

	open += after + n

	closing, ok := scan.Matching(body, open, '(', ')')
	if !ok {
		return member{}, 0, false
	}

	params, sink := x.parseParams(body[open+1 : closing])

	returnType, headerEnd := x.returnClause(body, closing+1)

	m := member{
		name:       name,
		returnType: returnType,
		params:     params,
		sink:       sink,
		modifiers:  strings.Fields(body[scan.LineStart(body, kwStart):kwStart]),
		anns:       scan.LeadingAnnotations(body, kwStart),
	}

	// Jump past the member body if it has one on this header.
	if bodyOpen := memberBodyBrace(body, headerEnd); bodyOpen >= 0 {
		_, end, _ := scan.Body(body, bodyOpen+1)
		return m, end, true
	}

	return m, headerEnd, true
}

// returnClause extracts the optional return type following a member's
// closing parenthesis. It returns the raw type text (or the platform's
// default spelling when absent) and the offset where the header ends.
func (x *extractor) returnClause(body string, from int) (string, int) {
	rest := body[from:]

	end := len(rest)
	if i := strings.IndexAny(rest, "{\n"); i >= 0 {
		end = i
	}

	header := rest[:end]

	sep := strings.Index(header, x.g.returnSep)
	if sep < 0 {
		return x.g.defaultReturn, from + end
	}

	ret := header[sep+len(x.g.returnSep):]

	// Strip an expression body: "fun tag(): String = model".
	if eq := strings.IndexByte(ret, '='); eq >= 0 {
		ret = ret[:eq]
	}

	ret = strings.TrimSpace(ret)
	if ret == "" {
		ret = x.g.defaultReturn
	}

	return ret, from + end
}

// parseParams splits a raw parameter list into parameters, stripping any
// event-sink parameter and reporting whether one was present.
func (x *extractor) parseParams(raw string) ([]model.Parameter, bool) {
	var (
		params []model.Parameter
		sink   bool
	)

	for _, seg := range scan.SplitTopLevel(raw, ',') {
		p, ok := x.parseParam(seg)
		if !ok {
			continue
		}

		if x.isSink(p.SourceType) {
			sink = true
			continue
		}

		params = append(params, p)
	}

	return params, sink
}

// parseParam divides one parameter segment at its first type-annotation
// separator. External or ignorable name labels keep only the last name
// token before the separator, so "_ events: FlutterEventSink" yields
// the name "events".
func (x *extractor) parseParam(seg string) (model.Parameter, bool) {
	colon := strings.IndexByte(seg, ':')
	if colon < 0 {
		return model.Parameter{}, false
	}

	name, ok := common.Last(strings.Fields(seg[:colon]))
	if !ok {
		return model.Parameter{}, false
	}

	typ := strings.TrimSpace(seg[colon+1:])

	// Strip a default value: "retries: Int = 3".
	if eq := strings.IndexByte(typ, '='); eq >= 0 {
		typ = strings.TrimSpace(typ[:eq])
	}

	return model.Parameter{
		Name:       name,
		SourceType: typ,
	}, true
}

// isSink reports whether t names the platform's event-sink type.
func (x *extractor) isSink(t string) bool {
	t = strings.TrimRight(strings.TrimSpace(t), "?!")
	for _, s := range x.g.sinkTypes {
		if t == s {
			return true
		}
	}

	return false
}

// classify applies the exposure rules to one captured member and builds
// its callable. Subscription members are classified by their (stripped)
// sink parameter alone; Call members obey the marker and visibility rules.
func (x *extractor) classify(m member, wholeClass bool) (model.Callable, bool) {
	c := model.Callable{
		Name:       m.name,
		ReturnType: m.returnType,
		Params:     m.params,
		Kind:       model.KindCall,
	}

	if m.sink {
		c.Kind = model.KindSubscription
		return c, true
	}

	if x.marked(m, x.g.excludeMarker) {
		return model.Callable{}, false
	}

	if wholeClass {
		return c, !x.restrictedVisibility(m.modifiers)
	}

	return c, x.marked(m, x.g.memberMarker)
}

// marked reports whether the member carries the given annotation, above
// the header or inline among its modifiers.
func (x *extractor) marked(m member, marker string) bool {
	for _, ann := range m.anns {
		if ann == marker {
			return true
		}
	}

	for _, mod := range m.modifiers {
		if i := strings.IndexByte(mod, '('); i >= 0 {
			mod = mod[:i]
		}

		if mod == marker {
			return true
		}
	}

	return false
}

// restrictedVisibility reports whether any modifier is a visibility
// qualifier that blocks exposure even under whole-class exposure.
func (x *extractor) restrictedVisibility(modifiers []string) bool {
	for _, mod := range modifiers {
		for _, r := range x.g.restricted {
			if mod == r {
				return true
			}
		}
	}

	return false
}

// headerOpenBrace finds the opening brace of a class body, skipping over
// a primary-constructor parameter list when one follows the class name.
func headerOpenBrace(src string, from int) int {
	for i := from; i < len(src); i++ {
		switch src[i] {
		case '{':
			return i
		case '(':
			closing, ok := scan.Matching(src, i, '(', ')')
			if !ok {
				return -1
			}

			i = closing
		}
	}

	return -1
}

// memberBodyBrace returns the offset of a member body's opening brace
// when the header at headerEnd introduces one, or -1 for a bodiless
// header (expression bodies, protocol requirements).
func memberBodyBrace(body string, headerEnd int) int {
	for i := headerEnd; i < len(body); i++ {
		switch body[i] {
		case '{':
			return i
		case ' ', '\t', '\r', '\n':
			// brace may open on the next line
		default:
			return -1
		}
	}

	return -1
}

// indexWord finds the first word-bounded occurrence of word in s,
// so "class" does not match inside "subclass" or "classifier".
func indexWord(s, word string) int {
	for at := 0; at < len(s); {
		i := strings.Index(s[at:], word)
		if i < 0 {
			return -1
		}

		start := at + i
		end := start + len(word)

		if boundedBefore(s, start) && boundedAfter(s, end) {
			return start
		}

		at = start + 1
	}

	return -1
}

func boundedBefore(s string, i int) bool {
	return i == 0 || !isIdentByte(s[i-1])
}

func boundedAfter(s string, i int) bool {
	return i >= len(s) || !isIdentByte(s[i])
}

// ident reads a leading identifier from s after skipping whitespace.
// It returns the identifier and the offset just past it.
func ident(s string) (string, int) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	start := i
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}

	return s[start:i], i
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// hasToken reports whether tok appears as a whitespace-delimited token in s.
func hasToken(s, tok string) bool {
	for _, f := range strings.Fields(s) {
		// strip annotation argument lists: "@objc(Device)" carries "@objc"
		if i := strings.IndexByte(f, '('); i >= 0 {
			f = f[:i]
		}

		if f == tok {
			return true
		}
	}

	return false
}
