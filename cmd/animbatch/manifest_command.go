package main

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kohaku-dev/animbatch/internal/config"
)

var manifestShowMappings bool

// Valid values for the enum-like manifest fields.
var (
	manifestDirections = map[string]bool{"LR": true, "4dir": true, "8dir": true, "none": true}
	manifestTimings    = map[string]bool{"loop": true, "once": true}
	manifestViews      = map[string]bool{"VIEW_SIDE": true, "VIEW_TOP": true, "VIEW_ISO45": true}

	canonicalShape = regexp.MustCompile(`^[^/]+/[^/]+$`)
)

var manifestCmd = &cobra.Command{
	Use:   "manifest <path>",
	Short: "Validate and summarize a naming manifest",
	Long: `Manifest loads a naming manifest (YAML or JSON), checks every mapping
for problems a run would trip over, and prints a summary. Exits nonzero
when any mapping is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := config.LoadManifest(args[0])
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(manifest.Mappings))
		for k := range manifest.Mappings {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var problems []string
		scoped, legacy, bare := 0, 0, 0
		for _, key := range keys {
			m := manifest.Mappings[key]
			switch {
			case strings.Contains(key, "::"):
				scoped++
			case strings.Contains(key, "/"):
				legacy++
			default:
				bare++
			}
			if m.Canonical != "" && !canonicalShape.MatchString(m.Canonical) {
				problems = append(problems, fmt.Sprintf("%s: canonical %q is not category/action", key, m.Canonical))
			}
			if m.Direction != "" && !manifestDirections[m.Direction] {
				problems = append(problems, fmt.Sprintf("%s: unknown direction %q", key, m.Direction))
			}
			if m.Timing != "" && !manifestTimings[m.Timing] {
				problems = append(problems, fmt.Sprintf("%s: unknown timing %q", key, m.Timing))
			}
			if m.View != "" && !manifestViews[m.View] {
				problems = append(problems, fmt.Sprintf("%s: unknown view %q", key, m.View))
			}
			if m.Canonical == "" && m.Category == "" && m.Action == "" &&
				m.Variant == "" && m.Direction == "" && m.Timing == "" && m.View == "" {
				problems = append(problems, fmt.Sprintf("%s: mapping has no fields", key))
			}
		}

		fmt.Printf("manifest %s: version %d, %d mappings (%d asset-scoped, %d legacy, %d bare)\n",
			args[0], manifest.Version, len(keys), scoped, legacy, bare)

		if manifestShowMappings {
			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Key", "Canonical", "Direction", "Timing", "View"})
			for _, key := range keys {
				m := manifest.Mappings[key]
				canonical := m.Canonical
				if canonical == "" && (m.Category != "" || m.Action != "") {
					canonical = m.Category + "/" + m.Action
					if m.Variant != "" {
						canonical += "_" + m.Variant
					}
				}
				tw.AppendRow(table.Row{key, canonical, m.Direction, m.Timing, m.View})
			}
			fmt.Println(tw.Render())
		}

		if len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintf(cmd.ErrOrStderr(), "invalid: %s\n", p)
			}
			return fmt.Errorf("%d invalid mapping(s)", len(problems))
		}
		fmt.Println("all mappings valid")
		return nil
	},
}

func init() {
	manifestCmd.Flags().BoolVar(&manifestShowMappings, "mappings", false, "print every mapping")
}
