package gsqlite_test

import (
	"fmt"
	"log"

	"github.com/gsqlite/gsqlite"
)

func Example() {
	conn, err := gsqlite.Connect(gsqlite.InMemory)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	cursor, err := conn.Cursor()
	if err != nil {
		log.Fatal(err)
	}

	if err := cursor.Execute("CREATE TABLE users (id, email)"); err != nil {
		log.Fatal(err)
	}

	err = cursor.ExecuteMany("INSERT INTO users VALUES (?, ?)", [][]any{
		{0, "George Torianik"},
		{1, "Vladimir Zelensky"},
		{2, "Glory to Ukraine"},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := cursor.Execute("SELECT * FROM users"); err != nil {
		log.Fatal(err)
	}
	rows, err := cursor.FetchAll()
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range rows {
		fmt.Println(row.Values()...)
	}
	// Output:
	// 0 George Torianik
	// 1 Vladimir Zelensky
	// 2 Glory to Ukraine
}
