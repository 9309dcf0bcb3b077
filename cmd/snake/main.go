package main

import (
	"github.com/toroidal/snake/cmd/snake/commands"
)

func main() {
	commands.Execute()
}
