package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/lanrat/dedupe/internal/cli"
)

func main() {
	// report a closed stdout as a write error instead of dying on the signal
	signal.Ignore(syscall.SIGPIPE)
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
