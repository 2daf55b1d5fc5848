package main

import "github.com/philipparndt/gomobius/cmd"

func main() {
	cmd.Execute()
}
