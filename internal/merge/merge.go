package merge

import (
	"fmt"
	"reflect"

	"bridgegen/internal/common"
	"bridgegen/internal/diagnostic"
	"bridgegen/internal/model"
)

// Merge unifies the Android and iOS entity lists.
//
// Entities are keyed by name. A name present on both sides becomes one
// Unified entity whose callable list is the union by name of both sides'
// callables, keeping the Android side's callable order first and
// preferring the iOS version on a name collision. A name present on one
// side only is passed through unchanged with its platform origin.
//
// The result preserves first-seen order: all Android entities in scan
// order, then iOS-only entities in scan order.
func Merge(android, ios []model.Entity) ([]model.Entity, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if common.IsEmpty(android) && common.IsEmpty(ios) {
		diags.AddInfo(diagnostic.CodeEmptyModel,
			"no exposed declarations found on either platform", "", "")
		return nil, diags
	}

	index := make(map[string]int, len(android))
	out := make([]model.Entity, 0, len(android)+len(ios))

	for _, e := range android {
		index[e.Name] = len(out)
		out = append(out, e)
	}

	for _, e := range ios {
		at, seen := index[e.Name]
		if !seen {
			index[e.Name] = len(out)
			out = append(out, e)

			continue
		}

		out[at] = unify(out[at], e, &diags)
	}

	return out, diags
}

// unify merges the incoming entity into the incumbent, unioning callables
// by name with newcomer preference.
func unify(incumbent, incoming model.Entity, diags *diagnostic.Diagnostics) model.Entity {
	unified := model.Entity{
		Name:   incumbent.Name,
		Origin: model.OriginUnified,
	}

	incomingByName := make(map[string]model.Callable, len(incoming.Callables))
	for _, c := range incoming.Callables {
		incomingByName[c.Name] = c
	}

	for _, c := range incumbent.Callables {
		newer, collides := incomingByName[c.Name]
		if !collides {
			unified.Callables = append(unified.Callables, c)
			continue
		}

		if !reflect.DeepEqual(c, newer) {
			diags.AddWarning(diagnostic.CodeMergeCollision,
				fmt.Sprintf("both platforms define %q with different signatures; using the %s version",
					c.Name, incoming.Origin),
				incumbent.Name, c.Name)
		}

		unified.Callables = append(unified.Callables, newer)
		delete(incomingByName, c.Name)
	}

	// Remaining incoming callables are new names; keep their declared order.
	for _, c := range incoming.Callables {
		if _, left := incomingByName[c.Name]; left {
			unified.Callables = append(unified.Callables, c)
		}
	}

	return unified
}
