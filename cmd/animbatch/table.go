package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kohaku-dev/animbatch/internal/export"
)

// assetResultTable renders the per-asset outcome summary of one run.
func assetResultTable(result *export.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Asset", "Status", "Animations", "Done", "Failed", "Note"})

	for _, ar := range result.Assets {
		note := ""
		switch {
		case ar.Error != "":
			note = ar.Error
		case ar.PartialFailures:
			note = "partial failures"
		}
		tw.AppendRow(table.Row{ar.AssetName, string(ar.Status), ar.Animations, ar.Completed, ar.Failed, note})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	tw.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d/%d", result.CompletedTasks, result.TotalTasks), "", ""})
	return tw.Render()
}
