package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List high-score store backends",
	Long:  `Shows the store backends that can be selected with --store or storage.backend in the config.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(_ *cobra.Command, _ []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	current := config.DefaultSnakeConfig().Storage.Backend
	if cfg, err := loadConfig(); err == nil {
		current = cfg.Storage.Backend
	}

	fmt.Println("Available backends:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Printf("    %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("    %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range backends {
		marker := "  "
		if b.Name == current {
			marker = "* "
		}
		fmt.Printf("  %s%-*s  %s\n", marker, maxNameLen, b.Name, b.Description)
	}

	fmt.Println()
	fmt.Println("* selected. Use 'snake --store <name>' to pick another.")
}
