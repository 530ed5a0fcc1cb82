// Package merge unifies the platform-scoped entity lists into one model.
//
// Same-named entities from the two platforms become a single unified
// entity whose callables are the union by name of both sides. When both
// platforms define the same callable name with different signatures, the
// iOS (second) side wins and a collision warning is recorded; the policy
// is deliberate and documented rather than silent.
package merge
