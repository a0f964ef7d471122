// Package libdiff computes character diffs between a type expression as
// written and its canonical form.
package libdiff
