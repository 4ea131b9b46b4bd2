package main

import (
	"latencygraph/pkg/commands"
)

func main() {
	commands.Execute()
}
