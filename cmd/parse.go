package cmd

import (
	"fmt"

	"ipam-importer/core/config"
	"ipam-importer/core/reconcile"
	"ipam-importer/feature/phpipam"

	"github.com/spf13/cobra"
)

var (
	// Flags for the parse command
	parseFile    string
	parseSheet   string
	parseVerbose bool
)

// parseCmd inspects an export without touching NetBox.
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a phpIPAM export and show what it contains",
	Long: `Parse reads a phpIPAM spreadsheet export and prints the subnets and
addresses it would import, without contacting NetBox. Useful for checking
an export before running import.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFile, "file", "", "Export to read: local path or s3://bucket/key (required)")
	parseCmd.Flags().StringVar(&parseSheet, "sheet", "", "Workbook sheet to read (defaults to the first sheet)")
	parseCmd.Flags().BoolVar(&parseVerbose, "verbose", false, "List every address under its subnet")
	_ = parseCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	src, err := openSource(cmd.Context(), cfg, parseFile, parseSheet)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	plan, err := reconcile.BuildPlan(phpipam.NewParser(src))
	if err != nil {
		return fmt.Errorf("failed to parse export: %w", err)
	}

	fmt.Println("\n--- Parsed Export ---")
	for _, subnet := range plan.Subnets {
		if subnet.Subnet.Description != "" {
			fmt.Printf("[Subnet] %s  %s (%d addresses)\n",
				subnet.Subnet.CIDR, subnet.Subnet.Description, len(subnet.Addresses))
		} else {
			fmt.Printf("[Subnet] %s (%d addresses)\n",
				subnet.Subnet.CIDR, len(subnet.Addresses))
		}
		if parseVerbose {
			for _, addr := range subnet.Addresses {
				fmt.Printf("  %-39s %s\n", addr.Address, addr.Hostname)
			}
		}
	}
	if len(plan.Orphans) > 0 {
		fmt.Printf("[No subnet] %d addresses without a preceding header\n", len(plan.Orphans))
		if parseVerbose {
			for _, addr := range plan.Orphans {
				fmt.Printf("  %-39s %s\n", addr.Address, addr.Hostname)
			}
		}
	}
	fmt.Println("---------------------")
	fmt.Printf("Subnets:    %d\n", plan.Summary.Subnets)
	fmt.Printf("Addresses:  %d\n", plan.Summary.Addresses)
	fmt.Printf("Orphans:    %d\n", plan.Summary.Orphans)

	return nil
}
