package main

import "prezo/cmd"

func main() {
	cmd.Execute()
}
