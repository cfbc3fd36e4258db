// Command gitlab-plus exposes the library's project, file, branch, tag, and
// merge request operations as a small CLI. Configuration comes from flags,
// GITLAB_* environment variables, or a .env file in the working directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp()
	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
