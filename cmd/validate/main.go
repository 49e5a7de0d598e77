// cmd/validate/main.go
// Checks the data directory before publishing: pools.json structure plus
// referential diagnostics for results.json and entries.json.
//
// Usage:
//
//	go run ./cmd/validate [-data data]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/174hz/duelkings/pickem"
	"github.com/174hz/duelkings/store"
)

func main() {
	dataDir := flag.String("data", "data", "data directory holding the JSON documents")
	shape := flag.String("shape", store.EntriesKeyed, "entries.json shape: keyed or inline")
	flag.Parse()

	st := store.New(*dataDir, *shape)

	doc, err := st.Pools()
	if err != nil {
		log.Fatal("load pools:", err)
	}

	errs := pickem.ValidatePools(doc)
	for _, e := range errs {
		fmt.Println("ERROR:", e)
	}

	// Unknown-game references are not errors, the grader skips them,
	// but they usually mean a typo'd id, so surface them.
	for _, pool := range doc.Pools {
		games := map[string]bool{}
		for _, g := range pool.Games {
			games[g.ID] = true
		}

		results, err := st.PoolResults(pool.ID)
		if err != nil {
			log.Fatal("load results:", err)
		}
		for gameID := range results {
			if !games[gameID] {
				fmt.Printf("WARN: results[%s]: unknown game id %s\n", pool.ID, gameID)
			}
		}

		entries, err := st.Entries(pool.ID)
		if err != nil {
			log.Fatal("load entries:", err)
		}
		for _, entry := range entries {
			for gameID := range entry.Picks {
				if !games[gameID] {
					fmt.Printf("WARN: entries[%s] user %s: unknown game id %s\n",
						pool.ID, entry.User, gameID)
				}
			}
		}
	}

	if len(errs) > 0 {
		os.Exit(1)
	}
	fmt.Printf("%d pool(s) OK\n", len(doc.Pools))
}
