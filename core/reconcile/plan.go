package reconcile

import (
	"context"
	"fmt"

	"storefront/core/catalog"
	"storefront/core/variant"
)

// BuildPlan generates a summary and action plan from reconciliation results.
// Every action targets a mirror; the primary is never mutated.
func BuildPlan(primary string, mirrors []string, results []Result, opts Options) *Plan {
	plan := &Plan{
		Primary: primary,
		Results: results,
		Actions: []Action{},
	}
	plan.Summary.TotalItems = len(results)

	for _, result := range results {
		if !result.Present[primary] {
			plan.Summary.MissingPrimary++
			if opts.DoPurge {
				for _, mirror := range mirrors {
					if !result.Present[mirror] {
						continue
					}
					plan.Actions = append(plan.Actions, Action{
						Type:   ActionDelete,
						Key:    result.ID,
						Target: mirror,
						Reason: fmt.Sprintf("missing in: [%s]", primary),
					})
					plan.Summary.PurgeActions++
				}
			}
			// Nothing to copy or sync from.
			continue
		}

		var missing []string
		for _, mirror := range mirrors {
			if !result.Present[mirror] {
				missing = append(missing, mirror)
			}
		}
		if len(missing) > 0 {
			plan.Summary.MissingMirror++
			if opts.DoCopy {
				for _, mirror := range missing {
					plan.Actions = append(plan.Actions, Action{
						Type:   ActionCopy,
						Key:    result.ID,
						Target: mirror,
						Reason: fmt.Sprintf("missing in: %v", missing),
					})
					plan.Summary.CopyActions++
				}
			}
		}

		if len(result.Mismatch) > 0 {
			plan.Summary.Mismatches++
			if opts.DoSync {
				for _, mirror := range mirrors {
					if !result.Present[mirror] {
						continue
					}
					plan.Actions = append(plan.Actions, Action{
						Type:   ActionSync,
						Key:    result.ID,
						Target: mirror,
						Reason: fmt.Sprintf("mismatch: %v", result.Mismatch),
					})
					plan.Summary.SyncActions++
				}
			}
		}
	}

	return plan
}

// ApplyPlan executes the actions in a plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, primary catalog.Source, mirrors []catalog.Source, plan *Plan, opts Options) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	targets := make(map[string]catalog.Source, len(mirrors))
	for _, m := range mirrors {
		targets[m.Name()] = m
	}

	docs := make(map[string]variant.Document)
	fetch := func(id string) (variant.Document, error) {
		if doc, ok := docs[id]; ok {
			return doc, nil
		}
		doc, err := primary.FetchProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		docs[id] = doc
		return doc, nil
	}

	for _, action := range plan.Actions {
		target, ok := targets[action.Target]
		if !ok {
			return executed, fmt.Errorf("unknown target source %s", action.Target)
		}

		switch action.Type {
		case ActionCopy, ActionSync:
			doc, err := fetch(action.Key)
			if err != nil {
				return executed, fmt.Errorf("failed to read %s from %s: %w", action.Key, primary.Name(), err)
			}
			if err := target.SaveProduct(ctx, action.Key, doc); err != nil {
				return executed, fmt.Errorf("failed to %s key %s: %w", action.Type, action.Key, err)
			}
		case ActionDelete:
			deleter, ok := target.(catalog.Deleter)
			if !ok {
				return executed, fmt.Errorf("source %s does not support deletes", target.Name())
			}
			if err := deleter.DeleteProduct(ctx, action.Key); err != nil {
				return executed, fmt.Errorf("failed to delete key %s: %w", action.Key, err)
			}
		default:
			return executed, fmt.Errorf("unknown action type %s", action.Type)
		}
		executed++
	}

	return executed, nil
}
