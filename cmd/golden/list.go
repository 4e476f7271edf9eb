package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/golden/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available engines",
	Long:  `Shows a list of all engines registered in golden.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	engines := registry.List()

	if len(engines) == 0 {
		fmt.Println("No engines available.")
		return
	}

	fmt.Println("Available engines:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, e := range engines {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, e := range engines {
		fmt.Printf("  %-*s  %s\n", maxIDLen, e.ID, e.Title)
	}

	fmt.Println()
	fmt.Println("Run 'golden play --engine <id>' to play with an engine.")
}
