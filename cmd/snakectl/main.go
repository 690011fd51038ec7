package main

import (
	"github.com/snakesocial/snakesocial-go/internal/cli"
)

func main() {
	cli.Execute()
}
