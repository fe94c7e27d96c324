package main

import "useffmpeg/internal/cli"

func main() {
	cli.Execute()
}
