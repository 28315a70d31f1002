// Quiver - Graph and search analytics engine for linked note corpora.
//
// Quiver keeps a link graph of a note vault in memory and answers
// analytics requests over stdio: PageRank, spreading activation,
// neighborhood analysis, community detection, and content search.
package main

import (
	"fmt"
	"os"

	"github.com/quiverlabs/quiver-go/cmd"
)

func main() {
	cli := cmd.NewCLI()

	if err := cli.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
