package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"storefront/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the catalog",
	Long:  `Checks the storage folder structure, the products table schema, every product document and the agreement between sources.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), checkAll)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the catalog folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkStructure)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the products table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkServer)
	},
}

// productsCmd represents the integrity products command
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Audit every product document of the serving source",
	Long:  `Formats every product and reports variant issues. Outputs metrics by default or a detailed JSON file with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.close(ctx)

		svc := integrity.NewService(rt.store, rt.cfg.Storage, rt.logger, rt.db, rt.sources)
		rt.logger.Info("Auditing products (this might take a while)...", zap.String("source", rt.cfg.Server.Source))
		report, err := svc.CheckProducts(ctx)
		if err != nil {
			return fmt.Errorf("product audit failed: %w", err)
		}

		issues := map[string]int{}
		for _, p := range report.Products {
			for _, issue := range p.Issues {
				issues[string(issue.Code)]++
			}
		}

		if jsonOutput {
			filename := fmt.Sprintf("integrity_products_%d.json", time.Now().Unix())
			if err := writeReport(filename, report); err != nil {
				return err
			}
			rt.logger.Info("Detailed JSON report saved", zap.String("file", filename), zap.Int("products_with_issues", report.WithIssues))
		}

		fmt.Println("\n=== Product Integrity Metrics ===")
		fmt.Printf("Total Products: %d\n", report.Total)
		fmt.Printf("With Issues: %d\n", report.WithIssues)
		for code, n := range issues {
			fmt.Printf("%s: %d\n", code, n)
		}
		fmt.Printf("Load Errors: %d\n", len(report.Errors))
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())
		return nil
	},
}

// sourcesCmd represents the integrity sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Compare products across the serving source and its mirrors",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkSources)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, serverCmd, productsCmd, sourcesCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
	productsCmd.Flags().Bool("json", false, "Save a detailed JSON report")
}

type integrityCheck int

const (
	checkAll integrityCheck = iota
	checkStructure
	checkServer
	checkSources
)

func runIntegrityChecks(ctx context.Context, only integrityCheck) error {
	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	logg := rt.logger
	svc := integrity.NewService(rt.store, rt.cfg.Storage, logg, rt.db, rt.sources)

	if only == checkAll || only == checkStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			if only == checkStructure && fixFlag {
				missing = nil
			} else {
				return fmt.Errorf("structure check failed: %w", err)
			}
		}

		switch {
		case only == checkStructure && fixFlag:
			logg.Info("Fixing missing folders...")
			created, err := svc.FixStructure(ctx)
			if err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.", zap.Strings("created", created))
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			if only == checkStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if only == checkAll || only == checkServer {
		if rt.db == nil {
			logg.Warn("Skipping server schema check, no database connection")
		} else {
			logg.Info("Checking server schema integrity...")
			report, err := svc.CheckServer()
			if err != nil {
				logg.Error("Server schema check failed", zap.Error(err))
			} else if report.Matched {
				logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
			} else {
				logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
				for table, tbl := range report.Tables {
					if tbl.Status == "ok" {
						continue
					}
					if len(tbl.MissingColumns) > 0 {
						logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
					}
					if len(tbl.TypeMismatches) > 0 {
						logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
					}
				}
				for _, e := range report.Errors {
					logg.Error("Inspection Error", zap.String("error", e))
				}
			}
		}
	}

	if only == checkAll {
		logg.Info("Auditing products...")
		report, err := svc.CheckProducts(ctx)
		if err != nil {
			logg.Error("Product audit failed", zap.Error(err))
		} else if report.WithIssues > 0 {
			logg.Warn("Products with issues detected", zap.Int("count", report.WithIssues),
				zap.String("hint", "run 'integrity products --json' for details"))
		}
	}

	if only == checkAll || only == checkSources {
		if len(rt.sources) < 2 {
			if only == checkSources {
				logg.Info("No mirror sources configured, nothing to compare.")
			}
			return nil
		}
		logg.Info("Comparing sources...")
		report, err := svc.CheckSources(ctx)
		if err != nil {
			return fmt.Errorf("sources check failed: %w", err)
		}
		if report.Incomplete == 0 && report.Mismatched == 0 {
			logg.Info("Sources agree.", zap.Strings("sources", report.Sources), zap.Int("total", report.Total))
		} else {
			logg.Warn("Sources disagree",
				zap.Strings("sources", report.Sources),
				zap.Int("total", report.Total),
				zap.Int("incomplete", report.Incomplete),
				zap.Int("mismatched", report.Mismatched))
			for _, r := range report.Results {
				if len(r.Mismatch) > 0 {
					logg.Warn("Product mismatch", zap.String("id", r.ID), zap.Strings("fields", r.Mismatch))
				}
			}
		}
	}
	return nil
}

func writeReport(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save JSON file: %w", err)
	}
	return nil
}
