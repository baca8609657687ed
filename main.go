package main

import "github.com/patrick-levesque/gitignore-assistant/cmd"

func main() {
	cmd.Execute()
}
