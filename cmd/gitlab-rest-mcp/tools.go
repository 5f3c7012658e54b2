package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/endpoints"
	"github.com/InkyQuill/gitlab-rest-mcp/pkg/gitlab"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools generated from the endpoint table",
	Long: `Prints every tool with its HTTP method and path. The --toolset flag limits the
listing to one toolset; --format selects table, json or yaml output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		toolset, _ := cmd.Flags().GetString("toolset")

		logger, err := initLogger("warn", viper.GetString("log.file"))
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(viper.GetString("openapi-spec"), logger)
		if err != nil {
			return err
		}
		return printTools(cmd.OutOrStdout(), catalog, toolListOptions{
			Format:  format,
			Toolset: toolset,
			Prefix:  viper.GetString("tool-prefix"),
		})
	},
}

func init() {
	toolsCmd.Flags().StringP("format", "o", "table", "Output format: table, json or yaml")
	toolsCmd.Flags().String("toolset", "", "Only list tools of this toolset")
}

type toolListOptions struct {
	Format  string
	Toolset string
	Prefix  string
}

// toolInfo is one row of the tool listing.
type toolInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Toolset     string   `json:"toolset" yaml:"toolset"`
	Method      string   `json:"method" yaml:"method"`
	Path        string   `json:"path" yaml:"path"`
	ReadOnly    bool     `json:"readOnly" yaml:"readOnly"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Required    []string `json:"required,omitempty" yaml:"required,omitempty"`
}

func collectTools(catalog *endpoints.Catalog, toolset, prefix string) ([]toolInfo, error) {
	eps := catalog.Endpoints()
	if toolset != "" {
		eps = catalog.ByToolset(toolset)
		if len(eps) == 0 {
			return nil, fmt.Errorf("unknown toolset %q (available: %s)", toolset, strings.Join(catalog.Toolsets(), ", "))
		}
	}

	out := make([]toolInfo, 0, len(eps))
	for _, ep := range eps {
		info := toolInfo{
			Name:        gitlab.EndpointToolName(ep, prefix),
			Toolset:     ep.Toolset,
			Method:      ep.Method,
			Path:        ep.Path,
			ReadOnly:    ep.ReadOnly(),
			Description: ep.Description,
		}
		for _, p := range ep.Params {
			if p.Required {
				info.Required = append(info.Required, p.Name)
			}
		}
		out = append(out, info)
	}
	return out, nil
}

func printTools(w io.Writer, catalog *endpoints.Catalog, opts toolListOptions) error {
	tools, err := collectTools(catalog, opts.Toolset, opts.Prefix)
	if err != nil {
		return err
	}

	switch strings.ToLower(opts.Format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tools)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tools); err != nil {
			return err
		}
		return enc.Close()
	case "", "table":
		_, err := fmt.Fprintln(w, toolsTable(tools))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%d tools\n", len(tools))
		return err
	}
	return fmt.Errorf("unknown format %q (expected table, json or yaml)", opts.Format)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	writeStyle  = cellStyle.Foreground(lipgloss.Color("208"))
)

func toolsTable(tools []toolInfo) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TOOL", "TOOLSET", "METHOD", "PATH").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 && row >= 0 && row < len(tools) && !tools[row].ReadOnly:
				return writeStyle
			}
			return cellStyle
		})
	for _, tool := range tools {
		t.Row(tool.Name, tool.Toolset, tool.Method, tool.Path)
	}
	return t.Render()
}
