// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/account-service/migrations"
)

// migrateCmd applies the schema migrations embedded in the binary. The down
// action rolls back a single migration.
var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|check]",
	Short:     "Run database migrations",
	Long:      "Apply, roll back or inspect the schema migrations embedded in the binary",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status", "check"},
	Run: func(cmd *cobra.Command, args []string) {
		action := "up"
		if len(args) > 0 {
			action = args[0]
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		asJSON, _ := cmd.Flags().GetBool("json")

		if err := migrate(cmd, dsn, action, asJSON); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
	},
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().Bool("json", false, "emit machine-readable output")
	_ = migrateCmd.MarkFlagRequired("dsn")

	rootCmd.AddCommand(migrateCmd)
}

func migrate(cmd *cobra.Command, dsn, action string, asJSON bool) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("invalid dsn: %w", err)
	}

	db := stdlib.OpenDB(*config)
	defer db.Close()

	ctx := cmd.Context()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	var opts []goose.ProviderOption
	if asJSON {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	out := cmd.OutOrStdout()

	switch action {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		return reportApplied(out, asJSON, results)
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		return reportApplied(out, asJSON, []*goose.MigrationResult{result})
	case "status":
		return reportStatus(ctx, provider, asJSON, out)
	case "check":
		return checkPending(ctx, provider, asJSON, out)
	}

	return nil
}

// reportApplied is silent in text mode; the goose logger already narrates
// each applied migration.
func reportApplied(out io.Writer, asJSON bool, results []*goose.MigrationResult) error {
	if !asJSON {
		return nil
	}
	if results == nil {
		results = []*goose.MigrationResult{}
	}
	return json.NewEncoder(out).Encode(map[string]any{"applied": results})
}

func reportStatus(ctx context.Context, provider *goose.Provider, asJSON bool, out io.Writer) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(out).Encode(statuses)
	}

	fmt.Fprintf(out, "%-24s  %s\n", "Applied At", "Migration")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(out, "%-24s  %s\n", appliedAt, s.Source.Path)
	}
	return nil
}

// checkPending fails when migrations are pending so deploy pipelines can gate
// on the exit code.
func checkPending(ctx context.Context, provider *goose.Provider, asJSON bool, out io.Writer) error {
	hasPending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, versionErr := provider.GetDBVersion(ctx)

	if hasPending {
		if asJSON {
			return json.NewEncoder(out).Encode(map[string]any{"status": "pending", "version": current})
		}
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	if asJSON {
		status := "ok"
		if versionErr != nil {
			status = "unknown"
		}
		return json.NewEncoder(out).Encode(map[string]any{"status": status, "version": current})
	}

	fmt.Fprintf(out, "database is up to date (version %d)\n", current)
	return nil
}
