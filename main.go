package main

import (
	"os"

	"github.com/Mahak-Sharma/Resume-to-job/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
