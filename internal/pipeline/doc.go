// Package pipeline runs a batch: validate inputs, group them by stem, then
// plan, confirm and execute the renames of each group in turn.
//
// Types:
//   - RunStats (Files, Groups, Renamed, Skipped, Declined, Failed)
//   - Confirmer, the approval step between planning and renaming
//
// Functions:
//   - Run(ctx, cfg, log, translator, confirmer) → RunStats, error
//   - ValidateInputs(paths, log) → []string
package pipeline
