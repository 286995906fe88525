// Command filecms serves a directory of text and markdown documents over HTTP
// and manages the credential file used to sign in.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newCLI().root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "filecms: %v\n", err)
		os.Exit(1)
	}
}
