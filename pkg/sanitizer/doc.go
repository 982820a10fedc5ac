// Package sanitizer normalizes molecule requests before validation.
//
// All functions are idempotent. They never reject input: a value that cannot
// be normalized is returned trimmed, and validation decides what to do with it.
//
// Normalization includes:
//   - Element symbols: trimmed, first letter upper case ("cl" becomes "Cl")
//   - Step names: trimmed, lower case, separators folded into underscores ("Remove-Hs" becomes "remove_hs")
//   - Tags (chirality, substance group type): trimmed, upper case
//   - Names: whitespace collapsed
//   - Slices: empty values dropped, order and repeats kept
package sanitizer
