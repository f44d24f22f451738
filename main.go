// Package main is the entry point for the autocomment CLI.
package main

import "autocomment.dev/pkg/autocomment/cmd"

func main() {
	cmd.Execute()
}
