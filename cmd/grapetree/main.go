// Command grapetree is the CLI front end over the tree-inference façade:
// it reads a profile batch as JSON from a file or stdin, invokes
// compute_tree or compute_distance_matrix, and writes the response
// envelope as JSON to stdout.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
