package main

import (
	"fmt"
	"os"

	"github.com/finwise/finwise-server/finwiseservice"
)

func main() {
	if err := finwiseservice.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
