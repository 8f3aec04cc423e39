package main

import (
	"os"

	"github.com/arjndr/catena/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
