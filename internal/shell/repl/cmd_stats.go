package repl

import (
	"fmt"
	"time"

	"github.com/gsqlite/gsqlite/internal/shell/styled"
	"github.com/gsqlite/gsqlite/internal/util/numutil"
	"github.com/jedib0t/go-pretty/v6/table"
)

func cmdStats(r *Repl) {
	stats := r.conn.Stats()

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Reads", "Writes", "Rows Fetched", "Commits", "Rollbacks"})
	tw.AppendRow(table.Row{
		numutil.IntWithCommas(stats.Reads),
		numutil.IntWithCommas(stats.Writes),
		numutil.IntWithCommas(stats.RowsFetched),
		numutil.IntWithCommas(stats.Commits),
		numutil.IntWithCommas(stats.Rollbacks),
	})

	fmt.Println(tw.Render())
	styled.DimmedColor().Printf("Session uptime: %s\n", time.Since(r.startedAt).Round(time.Second))
	fmt.Println()
}
