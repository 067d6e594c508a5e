package main

import "github.com/dalemusser/folio/internal/cli"

func main() {
	cli.Execute()
}
