package main

import (
	"os"

	"github.com/chidera/unipal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
