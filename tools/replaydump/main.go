// Command replaydump lists archived runs and dumps their recorded
// sequences for inspection.
//
// Usage:
//
//	replaydump -db echoes_runs.db -level level1
//	replaydump -db echoes_runs.db -run 3
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/hollowmoor/echoes/archive"
)

func main() {
	dbPath := flag.String("db", "echoes_runs.db", "path to the run archive database")
	level := flag.String("level", "", "list best runs for this level")
	runID := flag.Int64("run", 0, "dump the recordings of this run")
	limit := flag.Int("limit", 10, "max runs to list")
	flag.Parse()

	store, err := archive.New(*dbPath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer store.Close()

	switch {
	case *runID > 0:
		dumpRun(store, *runID)
	case *level != "":
		listRuns(store, *level, *limit)
	default:
		flag.Usage()
	}
}

func listRuns(store *archive.Store, level string, limit int) {
	runs, err := store.BestRuns(level, limit)
	if err != nil {
		log.Fatalf("list runs: %v", err)
	}
	if len(runs) == 0 {
		fmt.Printf("no runs recorded for %s\n", level)
		return
	}
	for _, r := range runs {
		fmt.Printf("run %d  %s  %.2fs  %d echoes  %s\n",
			r.ID, r.Level, r.Seconds, r.CloneCount, r.CompletedAt.Format("2006-01-02 15:04"))
	}
}

func dumpRun(store *archive.Store, runID int64) {
	recs, err := store.Recordings(runID)
	if err != nil {
		log.Fatalf("load recordings: %v", err)
	}
	if len(recs) == 0 {
		fmt.Printf("run %d has no recordings\n", runID)
		return
	}

	identities := make([]int, 0, len(recs))
	for id := range recs {
		identities = append(identities, id)
	}
	sort.Ints(identities)

	for _, id := range identities {
		seq := recs[id]
		fmt.Printf("echo %d: %d samples, %.2fs\n", id, len(seq), seq.Duration())
		for _, a := range seq {
			marks := ""
			if a.IsJumping {
				marks += " jump"
			}
			if a.IsDashing {
				marks += fmt.Sprintf(" dash(%.2f,%.2f)", a.DashDirection.X, a.DashDirection.Y)
			}
			if a.IsInteracting {
				marks += " interact"
			}
			if a.IsAttacking {
				marks += " throw"
			}
			fmt.Printf("  %6.2fs  move=%+.2f  pos=(%7.2f,%7.2f)  vel=(%+6.2f,%+6.2f)%s\n",
				a.Timestamp, a.Movement, a.Position.X, a.Position.Y, a.Speed.X, a.Speed.Y, marks)
		}
	}
}
