package main

import (
	"os"

	"github.com/streambinder/yturl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
