package main

import "github.com/jrazmi/taskd/app/taskd/commands"

func main() {
	commands.Execute()
}
