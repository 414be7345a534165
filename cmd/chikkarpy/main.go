// Command chikkarpy looks up and builds synonym dictionaries described
// by the chikkarpy binary dictionary format.
package main

import (
	"fmt"
	"os"

	"github.com/WorksApplications/chikkarpy/cmd/chikkarpy/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
