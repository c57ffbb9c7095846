package main

import (
	"fmt"
	"os"

	"github.com/noah-isme/sigue-client/internal/screen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		notice := screen.Report(err)
		if notice.Severity == screen.SeveritySilent {
			return
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", notice.Title, notice.Message)
		os.Exit(1)
	}
}
