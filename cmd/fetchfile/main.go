package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := fang.Execute(context.Background(), newRootCommand(cfg)); err != nil {
		os.Exit(1)
	}
}
