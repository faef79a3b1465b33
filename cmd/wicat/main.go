package main

import "wicat/cmd/cli"

func main() {
	cli.RunCLI()
}
