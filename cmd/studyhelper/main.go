package main

import (
	"fmt"
	"os"

	"github.com/english-study-helper/inflect/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
