package main

import "github.com/mcoot/puppybowl-roster/internal/cli"

func main() {
	cli.Execute()
}
