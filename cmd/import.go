package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"ipam-importer/core/config"
	"ipam-importer/core/logger"
	"ipam-importer/core/netbox"
	"ipam-importer/core/reconcile"
	"ipam-importer/core/storage"
	"ipam-importer/feature/phpipam"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the import command
	importFile    string
	importSheet   string
	importDryRun  bool
	importVerbose bool
	importYes     bool
)

// importCmd runs the reconciliation against NetBox.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a phpIPAM export into NetBox",
	Long: `Import reads a phpIPAM spreadsheet export and reconciles it into NetBox.

Missing prefixes and IP addresses are created; records that already exist
are skipped. Nothing is ever updated or deleted, so a run can be repeated
safely.

Examples:
  # Import a local export
  import --file phpipam_export.xlsx

  # Preview without touching NetBox
  import --file phpipam_export.csv --dry-run

  # Newest export under a bucket prefix
  import --file s3://exports/phpipam/

  # Non-interactive run
  import --file phpipam_export.xlsx --yes`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "Export to read: local path or s3://bucket/key (required)")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "Workbook sheet to read (defaults to the first sheet)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Tally intended changes without contacting NetBox")
	importCmd.Flags().BoolVar(&importVerbose, "verbose", false, "Log per-row progress")
	importCmd.Flags().BoolVar(&importYes, "yes", false, "Skip the confirmation prompt (non-interactive)")
	_ = importCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if importVerbose {
		cfg.Log.Level = "debug"
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	l = logger.WithRunID(l, logger.NewRunID())

	l.Info("Starting import", zap.String("file", importFile))

	// Connect to NetBox
	client, err := netbox.NewClient(cfg.NetBox)
	if err != nil {
		return fmt.Errorf("failed to create NetBox client: %w", err)
	}

	info, err := client.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach NetBox at %s: %w", cfg.NetBox.URL, err)
	}
	l.Info("Connected to NetBox",
		zap.String("url", cfg.NetBox.URL),
		zap.String("version", info.NetBoxVersion))

	// Open the export
	src, err := openSource(ctx, cfg, importFile, importSheet)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	// Check confirmation
	if importDryRun {
		l.Info("Running in dry-run mode: no data will be imported")
	} else if !confirmImport() {
		l.Warn("Import cancelled by user. No changes were made.")
		return nil
	}

	engine := reconcile.New(client, l, reconcile.Options{
		DryRun:  importDryRun,
		Verbose: importVerbose,
	})

	summary, runErr := engine.Run(ctx, phpipam.NewParser(src))

	// Errors on individual records are already counted in the summary; the
	// run itself only fails when the input stream breaks.
	printSummary(summary, importDryRun)
	if runErr != nil {
		return fmt.Errorf("import aborted: %w", runErr)
	}
	return nil
}

// bucketScheme marks a --file argument referring to object storage.
const bucketScheme = "s3://"

// openSource resolves the --file argument into a row source. s3://bucket/key
// fetches one object; a bare bucket or a trailing-slash prefix resolves to
// the newest object under it. Anything else is a local path.
func openSource(ctx context.Context, cfg *config.Config, file, sheet string) (phpipam.RowSource, error) {
	if !strings.HasPrefix(file, bucketScheme) {
		return phpipam.OpenFile(file, sheet)
	}

	bucket, key, err := splitBucketRef(file)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	body, key, err := storage.FetchObject(ctx, client, bucket, key)
	if err != nil {
		return nil, err
	}

	return phpipam.OpenObject(key, sheet, body)
}

// splitBucketRef splits an s3://bucket/key reference into its parts. The key
// may come back empty or with a trailing slash; both name a prefix whose
// newest object is resolved at fetch time.
func splitBucketRef(ref string) (bucket, key string, err error) {
	bucket, key, _ = strings.Cut(strings.TrimPrefix(ref, bucketScheme), "/")
	if bucket == "" {
		return "", "", fmt.Errorf("invalid bucket reference %q (expected s3://bucket/key)", ref)
	}
	return bucket, key, nil
}

// confirmImport prompts the user for confirmation or uses the --yes flag.
func confirmImport() bool {
	if importYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Println("\nWARNING: This will import data into NetBox!")
	fmt.Print("Continue? (yes/no): ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(response), "yes")
}

// printSummary writes the final statistics block to the console.
func printSummary(s reconcile.Summary, dryRun bool) {
	fmt.Println("\n--- Import Statistics ---")
	fmt.Printf("Prefixes created:      %d\n", s.SubnetsCreated)
	fmt.Printf("Prefixes skipped:      %d (already exist)\n", s.SubnetsSkipped)
	fmt.Printf("IP addresses created:  %d\n", s.AddressesCreated)
	fmt.Printf("IP addresses skipped:  %d (already exist)\n", s.AddressesSkipped)
	fmt.Printf("Errors:                %d\n", s.Errors)
	fmt.Println("-------------------------")

	if dryRun {
		fmt.Println("\nThis was a DRY RUN - no data was imported.")
	}
}
