package main

import (
	"os"

	"github.com/wamique00786/wesalvator/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
