package main

import "github.com/zjrosen/digitduel/cmd"

func main() {
	cmd.Execute()
}
