// Package planner turns a group of same-stem files into rename operations.
//
// Types:
//   - Operation (Source, Destination)
//   - Planner, built once per run from the extractor, translator and
//     processing settings
//
// Flow per group (Planner.Plan):
//  1. Extract identifiers from the stem
//  2. Strip them to get the translation input; empty input skips the group
//  3. Translate, then sanitize the result for the filesystem
//  4. Compose the new stem with the main identifier under the length cap
//  5. Re-attach each file's own extension chain in its own directory
package planner
