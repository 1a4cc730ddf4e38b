package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"storefront/core/reconcile"
	"storefront/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	copyMirrors  bool
	syncMirrors  bool
	purgeMirrors bool
	dryRunSync   bool
	yesConfirm   bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile products between the serving source and its mirrors",
	Long: `Reconcile products to detect items missing from a mirror, mirror-only items and mismatches.
Supports optional copy, sync and purge operations. The serving source is never modified.`,
}

// sourcesReconcileCmd performs mirror reconciliation with optional repairs.
var sourcesReconcileCmd = &cobra.Command{
	Use:   "sources",
	Short: "Reconcile mirror sources (report + optionally copy/sync/purge)",
	Long: `Reconcile every mirror listed in server.mirrors against server.source.

Examples:
  # Report only
  reconcile sources

  # Copy missing products to the mirrors (with interactive confirmation)
  reconcile sources --copy

  # Repair mismatches and remove mirror-only products without prompting
  reconcile sources --sync --purge --yes`,
	RunE: runSourcesReconcile,
}

func init() {
	reconcileCmd.AddCommand(sourcesReconcileCmd)

	sourcesReconcileCmd.Flags().BoolVar(&copyMirrors, "copy", false, "Copy products missing from a mirror")
	sourcesReconcileCmd.Flags().BoolVar(&syncMirrors, "sync", false, "Overwrite mirror products that differ")
	sourcesReconcileCmd.Flags().BoolVar(&purgeMirrors, "purge", false, "Delete mirror products the serving source does not have")
	sourcesReconcileCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	sourcesReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

func runSourcesReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	l := rt.logger
	if len(rt.sources) < 2 {
		l.Info("No mirror sources configured. Set server.mirrors to reconcile.")
		return nil
	}

	opts := reconcile.Options{
		DoCopy:  copyMirrors,
		DoSync:  syncMirrors,
		DoPurge: purgeMirrors,
		DryRun:  dryRunSync,
	}

	svc := integrity.NewService(rt.store, rt.cfg.Storage, l, rt.db, rt.sources)

	l.Info("Planning reconciliation...")
	plan, err := svc.PlanSync(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	printReconcileReport(l, plan)

	if !copyMirrors && !syncMirrors && !purgeMirrors {
		l.Info("No actions requested. Use --copy, --sync or --purge to repair the mirrors.")
		return nil
	}

	if dryRunSync {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		l.Info("No actions required based on current flags.")
		return nil
	}
	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	if err := rt.migrate(ctx, rt.sources[1:]...); err != nil {
		return err
	}

	l.Info("Applying actions...")
	executed, err := svc.ApplySync(ctx, plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan after %d actions: %w", executed, err)
	}
	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.String("primary", plan.Primary),
		zap.Int("total_items", s.TotalItems),
		zap.Int("missing_primary", s.MissingPrimary),
		zap.Int("missing_mirror", s.MissingMirror),
		zap.Int("mismatches", s.Mismatches),
	)

	if len(plan.Actions) == 0 {
		return
	}
	l.Info("Planned actions",
		zap.Int("copy_actions", s.CopyActions),
		zap.Int("sync_actions", s.SyncActions),
		zap.Int("purge_actions", s.PurgeActions),
		zap.Int("total_actions", len(plan.Actions)),
	)

	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("target", action.Target),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\nAuto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\nType 'yes' to confirm changes to the mirrors: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
