package main

import (
	"github.com/rustyeddy/claimsim/internal/cli"
)

func main() {
	cli.Execute()
}
