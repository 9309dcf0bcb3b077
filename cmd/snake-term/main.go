package main

import (
	"github.com/toroidal/snake/cmd/snake-term/commands"
)

func main() {
	commands.Execute()
}
