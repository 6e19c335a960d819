package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/create-zk-app/cza/internal/output"
	"github.com/create-zk-app/cza/internal/registry"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var (
		flagDetailed bool
		flagJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Long: `List the templates available to cza new.

The default output shows template keys with a short description. Use
--detailed for the full template records, or --json for
machine-readable output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry.Load()
			if err != nil {
				return fatal(err)
			}

			if flagJSON {
				return printTemplatesJSON(cmd, reg)
			}

			output.Header("Available templates")
			for _, key := range reg.Keys() {
				tmpl := reg.Templates[key]
				output.TemplateItem(key, tmpl.Name)
				if flagDetailed {
					output.KeyValue("description", tmpl.Description)
					output.KeyValue("repository", tmpl.Repository)
					output.KeyValue("subfolder", tmpl.Subfolder)
					output.KeyValue("frameworks", strings.Join(tmpl.Frameworks, ", "))
					if tmpl.Revision != "" {
						output.KeyValue("revision", tmpl.Revision)
					}
					output.Println("")
				}
			}

			output.Println("")
			if !flagDetailed {
				output.Hint("Use 'cza list --detailed' for full template records.")
			}
			output.Hint("Use 'cza new <name> --template <key>' to create a project.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flagDetailed, "detailed", "d", false, "show full template records")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit templates as JSON")

	return cmd
}

// templateListing is one JSON listing entry: the registry key plus the
// template record it maps to.
type templateListing struct {
	Key string `json:"key"`
	registry.Template
}

func printTemplatesJSON(cmd *cobra.Command, reg *registry.Registry) error {
	listings := make([]templateListing, 0, len(reg.Templates))
	for _, key := range reg.Keys() {
		listings = append(listings, templateListing{Key: key, Template: reg.Templates[key]})
	}

	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return fatal(fmt.Errorf("encoding templates: %w", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
