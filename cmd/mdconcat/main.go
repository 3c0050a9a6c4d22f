package main

import (
	"os"

	"github.com/harrison/mdconcat/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
