package main

import (
	"github.com/genesis3lib/code-react/internal/cli"
)

func main() {
	cli.Execute()
}
