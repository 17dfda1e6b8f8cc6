package main

import (
	"os"

	"zaazu/client/internal/cmdutil"
	"zaazu/client/pkg/cmd"
)

func main() {
	root, err := cmd.New()
	if err != nil {
		cmdutil.PrintE(err.Error())
		os.Exit(1)
	}

	if err := root.Execute(); err != nil {
		cmdutil.PrintE(err.Error())
		os.Exit(1)
	}
}
