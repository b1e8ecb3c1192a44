package main

import (
	"os"

	"github.com/cother/cother/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
