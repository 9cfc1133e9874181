package main

import "abifix/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
