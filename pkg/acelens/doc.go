// Package acelens analyzes Huorong security logs of ACE anti-cheat disk
// scan activity and aggregates them into summary statistics.
//
// Quick start:
//
//	result, err := acelens.AnalyzeFile("fk-df.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d attempts, %.1f%% blocked\n", result.TotalAttempts, result.BlockRate())
//
// Parsing is heuristic: entries are located by anchor substrings, partially
// malformed entries contribute whatever fields extract cleanly, and nothing
// short of zero valid entries is an error.
package acelens
