package main

import "x64lab/cmd/x64lab/cmd"

func main() {
	cmd.Execute()
}
