// =============================================================================
// Library Inventory Cleaner - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Library Inventory Cleaner CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   inventory-clean clean <input> <output>  - Clean an inventory export
//   inventory-clean validate                - Validate config and lookups
//   inventory-clean version                 - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core cleaning logic (not for external import)
//   - pkg/       : Shared utilities
//   - data/      : Default genre and audience lookup documents
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/library-inventory-cleaner/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
