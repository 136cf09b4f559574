//go:build cli
// +build cli

package main

import (
	_ "sterileops/custom"

	"sterileops/cmd"
	"sterileops/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
