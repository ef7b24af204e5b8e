package main

import "github.com/mcoot/iotagame/internal/cli"

func main() {
	cli.Execute()
}
