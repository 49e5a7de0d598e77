// cmd/standings/main.go
// Prints a pool's evaluated status and leaderboard without a browser.
//
// Usage:
//
//	go run ./cmd/standings [-data data] [-pool nfl-week-1] [-preview]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/174hz/duelkings/models"
	"github.com/174hz/duelkings/pickem"
	"github.com/174hz/duelkings/store"
)

func main() {
	dataDir := flag.String("data", "data", "data directory holding the JSON documents")
	shape := flag.String("shape", store.EntriesKeyed, "entries.json shape: keyed or inline")
	poolID := flag.String("pool", "", "pool id (defaults to currentPoolId)")
	policy := flag.String("policy", string(pickem.CloseAtDeadline), "closing policy: deadline or earliestGameStart")
	preview := flag.Bool("preview", false, "evaluate with the preview override on")
	flag.Parse()

	st := store.New(*dataDir, *shape)

	doc, err := st.Pools()
	if err != nil {
		log.Fatal("load pools:", err)
	}

	var pool models.Pool
	var ok bool
	if *poolID != "" {
		pool, ok = doc.FindPool(*poolID)
	} else {
		pool, ok = doc.CurrentPool()
	}
	if !ok {
		log.Fatal("no such pool")
	}

	results, err := st.PoolResults(pool.ID)
	if err != nil {
		log.Fatal("load results:", err)
	}
	entries, err := st.Entries(pool.ID)
	if err != nil {
		log.Fatal("load entries:", err)
	}

	status := pickem.EvaluateStatus(pool, results, time.Now(), pickem.StatusOptions{
		Policy:      pickem.ClosingPolicy(*policy),
		PreviewOpen: *preview,
	})

	fmt.Printf("%s (%s): %s\n\n", pool.Label, pool.ID, status)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tUSER\tSCORE")
	for i, row := range pickem.Leaderboard(pool, entries, results) {
		fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, row.User, row.Score)
	}
	w.Flush()
}
