// Package main provides the lumen command line tool.
package main

import "github.com/lumen-cv/lumen/cmd/lumen/cmd"

func main() {
	cmd.Execute()
}
