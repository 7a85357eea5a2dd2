package main

import "github.com/z64/shark-report/internal/cli"

func main() {
	cli.Execute()
}
