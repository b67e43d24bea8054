package cmd

import (
	"fmt"

	"ipam-importer/core/config"
	"ipam-importer/core/netbox"

	"github.com/spf13/cobra"
)

// statusCmd checks that NetBox is reachable with the configured credentials.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check connectivity to NetBox",
	Long:  `Status loads the configuration, pings the NetBox API and prints its version.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		client, err := netbox.NewClient(cfg.NetBox)
		if err != nil {
			return fmt.Errorf("failed to create NetBox client: %w", err)
		}

		info, err := client.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to reach NetBox at %s: %w", cfg.NetBox.URL, err)
		}

		fmt.Printf("Connected to NetBox at %s (version %s)\n", cfg.NetBox.URL, info.NetBoxVersion)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
