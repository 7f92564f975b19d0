// Command museumctl queries the museum API from a terminal: it checks
// reachability, browses veterans and news with the same filters as the site
// and verifies administrator credentials.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
