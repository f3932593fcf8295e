// Package main is the entry point for the mkaudit CLI.
package main

import "mkaudit.dev/pkg/mkaudit/cmd"

func main() {
	cmd.Execute()
}
