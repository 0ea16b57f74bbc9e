package repl

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/gsqlite/gsqlite/internal/shell/repl/importbar"
	"github.com/gsqlite/gsqlite/internal/shell/styled"
)

// importBatchSize is the number of CSV rows inserted per ExecuteMany
// call.
const importBatchSize = 500

func cmdImport(r *Repl, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: .import [csv_path] [table]")
		return
	}
	csvPath, tableName := args[0], args[1]

	file, err := os.Open(csvPath)
	if err != nil {
		fmt.Println("Failed to open CSV file:", err)
		return
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		fmt.Println("Failed to parse CSV file:", err)
		return
	}
	if len(records) == 0 {
		fmt.Println("Nothing to import, the CSV file is empty")
		return
	}

	placeholders := strings.Repeat("?, ", len(records[0]))
	placeholders = strings.TrimSuffix(placeholders, ", ")
	operation := fmt.Sprintf("INSERT INTO %s VALUES (%s)", tableName, placeholders)

	cursor, err := r.conn.Cursor()
	if err != nil {
		fmt.Println("Failed to import:", r.cleanError(err.Error()))
		return
	}
	defer func() {
		_ = cursor.Close()
	}()

	bar := importbar.NewBar("Importing", len(records))
	for start := 0; start < len(records); start += importBatchSize {
		end := min(start+importBatchSize, len(records))

		batch := make([][]any, 0, end-start)
		for _, record := range records[start:end] {
			params := make([]any, len(record))
			for i, field := range record {
				params[i] = field
			}
			batch = append(batch, params)
		}

		if err := cursor.ExecuteMany(operation, batch); err != nil {
			bar.Finish()
			fmt.Println("Failed to import:", r.cleanError(err.Error()))
			return
		}
		bar.Add(end - start)
	}
	bar.Finish()

	fmt.Printf("Imported %d row(s) into %s\n", len(records), tableName)
	styled.DimmedColor().Printf("Enter \"commit\" to persist the imported rows\n")
	fmt.Println()
}
