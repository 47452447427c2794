package main

import (
	"github.com/noteloom/noteloom-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
