package main

import (
	"os"

	"github.com/esimports/eis/pkg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
