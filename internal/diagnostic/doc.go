// Package diagnostic provides structured warnings and errors for the
// bridge generator.
//
// Key capabilities:
//   - Merge collision reports (same callable defined on both platforms)
//   - Unbalanced-delimiter warnings from extraction
//   - Aggregation across pipeline stages with severity filtering
package diagnostic
