package main

import "event-state/cmd"

func main() {
	cmd.Execute()
}
