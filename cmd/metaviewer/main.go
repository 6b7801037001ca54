// Command metaviewer renders the meta viewer table for fixture records,
// optionally reading meta from the host database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
