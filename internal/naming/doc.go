// Package naming decomposes filenames and rebuilds them after translation.
//
// Types:
//   - Identifier (Value, Kind) and the Extractor that finds them
//   - FileGroup (Stem, Paths)
//
// Functions:
//   - SplitExtensions(filename, max) → stem, chain
//     Bounded chain of 1–7 character trailing segments.
//   - (*Extractor).Extract(text) → []Identifier
//     Ordered matcher table (youtube, uuid, numeric, mixed, bracketed,
//     hash, custom), deduplicated by first occurrence.
//   - StripIdentifiers(text, ids) → translation input
//   - SanitizeForFilesystem(text) → portable name fragment
//   - Compose(text, ids, maxLength) → new stem
//   - GroupFiles(paths, max) → []FileGroup
//
// Everything here is pure string work; the package never touches the
// filesystem.
package naming
