package main

import "ternc/cmd"

func main() {
	cmd.Execute()
}
