package main

import "github.com/tayden1990/alnscope/internal/cli"

func main() {
	cli.Execute()
}
