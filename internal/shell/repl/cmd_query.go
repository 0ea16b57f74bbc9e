package repl

import (
	"fmt"

	"github.com/gsqlite/gsqlite"
	"github.com/gsqlite/gsqlite/internal/shell/styled"
	"github.com/jedib0t/go-pretty/v6/table"
)

func cmdQuery(r *Repl, input string) {
	tw := styled.NewTableWriter()

	cursor, err := r.conn.Cursor()
	if err != nil {
		renderError(tw, r.cleanError(err.Error()))
		return
	}
	defer func() {
		_ = cursor.Close()
	}()

	if err := cursor.Execute(input); err != nil {
		renderError(tw, r.cleanError(err.Error()))
		return
	}

	if desc := cursor.Description(); desc != nil {
		header := table.Row{}
		for _, col := range desc {
			header = append(header, col)
		}
		tw.AppendHeader(header)

		rows, err := cursor.FetchAll()
		if err != nil {
			renderError(styled.NewTableWriter(), r.cleanError(err.Error()))
			return
		}
		for _, row := range rows {
			tw.AppendRow(displayRow(row))
		}

		fmt.Println(tw.Render())
		styled.DimmedColor().Printf("%d row(s)\n", len(rows))
		fmt.Println()
		return
	}

	lastID := "-"
	if id, ok := cursor.LastInsertRowID(); ok {
		lastID = fmt.Sprintf("%d", id)
	}

	tw.AppendHeader(table.Row{"-", "Rows Affected", "Last Insert ID"})
	tw.AppendRow(table.Row{"OK", cursor.RowsAffected(), lastID})
	fmt.Println(tw.Render())
}

func cmdCommit(r *Repl) {
	tw := styled.NewTableWriter()
	if err := r.conn.Commit(); err != nil {
		renderError(tw, r.cleanError(err.Error()))
		return
	}
	tw.AppendHeader(table.Row{"OK"})
	tw.AppendRow(table.Row{"Transaction committed"})
	fmt.Println(tw.Render())
}

func cmdRollback(r *Repl) {
	tw := styled.NewTableWriter()
	if err := r.conn.Rollback(); err != nil {
		renderError(tw, r.cleanError(err.Error()))
		return
	}
	tw.AppendHeader(table.Row{"OK"})
	tw.AppendRow(table.Row{"Transaction rolled back"})
	fmt.Println(tw.Render())
}

func renderError(tw table.Writer, msg string) {
	tw.AppendHeader(table.Row{"Error"})
	tw.AppendRow(table.Row{msg})
	fmt.Println(tw.Render())
}

// displayRow renders NULLs and blobs in their SQL literal form.
func displayRow(row gsqlite.Row) table.Row {
	out := table.Row{}
	for _, value := range row {
		out = append(out, value.String())
	}
	return out
}
