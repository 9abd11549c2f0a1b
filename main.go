package main

import "github.com/jakexks/go-maven-release/cmd"

func main() {
	cmd.Execute()
}
