// Package reconcile plans and applies repairs that bring mirror product
// sources back in line with the primary source.
//
// A plan is built from per-product presence and mismatch results (see
// feature/integrity/checks.CheckSources). Depending on Options it contains:
//
//   - copy actions for products the primary has and a mirror lacks
//   - sync actions for products whose formatted fields differ
//   - delete actions for mirror products the primary does not have
//
// Planning never mutates anything. ApplyPlan only runs when Options.Confirmed
// is set and Options.DryRun is not, and deletes require the target source to
// implement catalog.Deleter.
//
//	plan := reconcile.BuildPlan("storage", []string{"database"}, results, opts)
//	executed, err := reconcile.ApplyPlan(ctx, primary, mirrors, plan, opts)
package reconcile
