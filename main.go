package main

import (
	"os"

	"github.com/AnyUserName/prismsort-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
