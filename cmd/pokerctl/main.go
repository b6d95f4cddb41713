package main

import (
	"github.com/kihyunnn/Texas-holdem/internal/cli"
)

func main() {
	cli.Execute()
}
