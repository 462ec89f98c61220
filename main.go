package main

import "gamesync/cmd"

func main() {
	cmd.Execute()
}
