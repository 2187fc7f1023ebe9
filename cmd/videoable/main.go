package main

import (
	"os"

	"github.com/yoursandeshshrestha/videoable/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
