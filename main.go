package main

import "github.com/j0taaa/tp1-CD/cmd"

func main() {
	cmd.Execute()
}
