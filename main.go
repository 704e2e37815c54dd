// Package main is the entry point for the hotedit CLI.
package main

import "hotedit.dev/pkg/hotedit/cmd"

func main() {
	cmd.Execute()
}
