package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/petshelter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect petshelter configuration",
	Long:  `View the petshelter configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration with source annotations",
	Long: `Show the fully resolved configuration with annotations indicating
where each value came from.

Configuration is loaded from multiple sources with the following precedence:
  1. Embedded defaults (built into binary)
  2. Config file (~/.config/petshelter/config.yaml)
  3. PETSHELTER_* environment variables (highest precedence)`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("# Petshelter Configuration")
	fmt.Println()
	fmt.Println("## Sources (in order of precedence)")
	for _, src := range cfg.Sources() {
		fmt.Printf("  - %s\n", src)
	}
	fmt.Println()

	fmt.Println("## Directories")
	fmt.Printf("  Config file: %s\n", filepath.Join(config.DefaultConfigDir(), "config.yaml"))
	fmt.Println()

	fmt.Println("## Settings")
	fmt.Printf("  shelter_name: %s\n", cfg.ShelterName)
	fmt.Printf("  plain:        %t\n", cfg.Plain)

	return nil
}
