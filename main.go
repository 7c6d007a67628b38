package main

import "triptrack/cmd"

func main() {
	cmd.Execute()
}
