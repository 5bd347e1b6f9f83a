package main

import "github.com/notargets/gopfield/cmd"

func main() {
	cmd.Execute()
}
