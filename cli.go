//go:build cli
// +build cli

package main

import (
	_ "foundry.GO/custom"

	"foundry.GO/cmd"
	"foundry.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
