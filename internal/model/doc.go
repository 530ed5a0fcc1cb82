// Package model defines the unified symbol model shared by the pipeline.
//
// Key types:
//   - Entity: one bridged native class, becomes one generated proxy class
//   - Callable: one bridged member, either a Call or a Subscription
//   - Parameter: a positional name/type pair within a Callable
//
// Entities are created by the extractors scoped to one platform and one
// source file, unified by the merger, and read-only from emission onward.
package model
