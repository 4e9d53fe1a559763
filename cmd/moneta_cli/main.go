package main

import "github.com/moneta-svc/moneta/internal/cli"

func main() {
	cli.Execute()
}
