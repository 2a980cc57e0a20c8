// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docsmith/internal/pipeline"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available conversion tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		asYAML, _ := cmd.Flags().GetBool("yaml")
		if asYAML {
			return yaml.NewEncoder(os.Stdout).Encode(pipeline.Tools())
		}
		for _, info := range pipeline.Tools() {
			fmt.Printf("%-14s %s (accepts %v)\n", info.ID, info.Description, info.Extensions)
		}
		return nil
	},
}

func init() {
	toolsCmd.Flags().Bool("yaml", false, "output the tool list as YAML")

	rootCmd.AddCommand(toolsCmd)
}
