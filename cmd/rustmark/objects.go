// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rustmark/internal/markup"
	"github.com/pdiddy/rustmark/internal/rustobjects"
)

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List the registered object types",
	Long: `Objects lists the directive, cross-reference role, and index template of
every object type the build recognizes.`,
	RunE: runObjects,
}

// objectTypeInfo is the JSON shape for one registered object type.
type objectTypeInfo struct {
	Directive     string `json:"directive"`
	Role          string `json:"role"`
	IndexTemplate string `json:"index_template"`
}

func runObjects(cmd *cobra.Command, args []string) error {
	engine := markup.NewEngine()
	if err := rustobjects.Setup(engine); err != nil {
		return fmt.Errorf("registering object types: %w", err)
	}

	registered := engine.ObjectTypes()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		infos := make([]objectTypeInfo, len(registered))
		for i, ot := range registered {
			infos[i] = objectTypeInfo{
				Directive:     ot.Directive,
				Role:          ot.Role,
				IndexTemplate: ot.IndexTemplate,
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Fprintf(os.Stdout, "%-12s  %-8s  %s\n", "Directive", "Role", "Index template")
	for _, ot := range registered {
		fmt.Fprintf(os.Stdout, "%-12s  %-8s  %s\n", ot.Directive, ot.Role, ot.IndexTemplate)
	}
	return nil
}

func init() {
	objectsCmd.Flags().Bool("json", false, "output object types as JSON")

	rootCmd.AddCommand(objectsCmd)
}
