package cli

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotstyle/pkg/dot/attrs"
	dotcolor "github.com/matzehuels/dotstyle/pkg/dot/color"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// inspectCommand creates the inspect command, which tabulates the style
// defaults and override counts of each graph.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		all   bool
		flags readFlags
	)

	cmd := &cobra.Command{
		Use:   "inspect <file.dot|file.json>",
		Short: "Show the style defaults and overrides of each graph",
		Long: `Inspect prints one table per graph. Each row is a visual property with
its default value and the number of elements that override it. By default
only properties whose default differs from the Graphviz baseline, or that
some element overrides, are listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rd, err := c.reader(cmd, flags)
			if err != nil {
				return err
			}
			graphs, report, err := loadGraphs(ctx, rd, args[0])
			if err != nil {
				return err
			}
			logReport(loggerFromContext(ctx), report)

			for i, g := range graphs {
				if i > 0 {
					fmt.Fprintln(c.Stdout)
				}
				fmt.Fprintln(c.Stdout, StyleTitle.Render(graphLabel(g.Name, i)))
				fmt.Fprintln(c.Stdout, StyleDim.Render(plural(g.NodeCount(), "node")+" · "+plural(g.EdgeCount(), "edge")))
				fmt.Fprintln(c.Stdout, styleTable(styleRows(g, all)).Render())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every property, including untouched baseline values")
	flags.register(cmd)

	return cmd
}

// styleRows lists kind, property, default and override count per property.
func styleRows(g *visual.Graph, all bool) [][]string {
	var rows [][]string
	for _, kind := range visual.Kinds {
		defaults := g.Defaults.For(kind)
		baseline := attrs.Baseline(kind)
		for _, p := range visual.Properties(kind) {
			def, ok := defaults[p]
			if !ok {
				def, ok = baseline[p]
			}
			n := overrideCount(g, kind, p)
			changed := ok && !visual.Equal(def, baseline[p])
			if !all && !changed && n == 0 {
				continue
			}
			value := "-"
			if ok {
				value = formatValue(def)
			}
			rows = append(rows, []string{kind.String(), p.ID, value, strconv.Itoa(n)})
		}
	}
	return rows
}

func overrideCount(g *visual.Graph, kind visual.Kind, p visual.Property) int {
	n := 0
	switch kind {
	case visual.KindNetwork:
		if _, ok := g.Network[p]; ok {
			n++
		}
	case visual.KindNode:
		for _, node := range g.Nodes() {
			if _, ok := node.Overrides[p]; ok {
				n++
			}
		}
	case visual.KindEdge:
		for _, e := range g.Edges() {
			if _, ok := e.Overrides[p]; ok {
				n++
			}
		}
	}
	return n
}

func styleTable(rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Property", "Default", "Overrides").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 0 {
				return StyleDim
			}
			return lipgloss.NewStyle()
		})
}

// formatValue renders a property value compactly, using DOT notation for
// colors and numbers.
func formatValue(v any) string {
	switch v := v.(type) {
	case color.NRGBA:
		return dotcolor.Format(v)
	case float64:
		return attrs.FormatFloat(v)
	case []visual.Point:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = attrs.FormatFloat(p.X) + "," + attrs.FormatFloat(p.Y)
		}
		return strings.Join(parts, " ")
	case visual.Gradient:
		if v.Flat() {
			return "flat"
		}
		stops := make([]string, len(v.Stops))
		for i, s := range v.Stops {
			stops[i] = dotcolor.Format(s.Color) + ";" + attrs.FormatFloat(s.Weight)
		}
		return v.Kind.String() + " " + strings.Join(stops, ":")
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}
