// Command wflint validates the YAML syntax of CI workflow files.
//
// Usage:
//
//	wflint
//
// It scans .github/workflows/*.yml under the working directory, prints a
// line per file, and exits 1 if any file fails to parse.
package main

import "wflint/internal/cli"

func main() {
	cli.Execute()
}
