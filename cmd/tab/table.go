package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTabTable renders the open-tab listing. The first column carries
// the active-tab marker; the remaining columns are the daemon's tab
// metadata in wire order.
func renderTabTable(list tabListData) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"", "ID", "Title", "URL"})

	for _, tab := range list.Tabs {
		marker := ""
		if tab.ID == list.ActiveTabID {
			marker = "*"
		}
		tw.AppendRow(table.Row{marker, tab.ID, tab.Title, tab.URL})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter},
		{Number: 2, AlignHeader: text.AlignLeft},
		{Number: 3, AlignHeader: text.AlignLeft},
		{Number: 4, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
