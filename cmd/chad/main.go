// Command chad audits a GitHub fleet for staleness, cost and compliance.
package main

import (
	"fmt"
	"os"

	"github.com/bluefalconink/chad/cmd"
	"github.com/bluefalconink/chad/internal/iostore"
)

func main() {
	err := cmd.Execute()

	iostore.CloseStores()
	if perr := cmd.StopProfiling(); perr != nil && err == nil {
		err = perr
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
