package main

import "squarify/cmd"

func main() {
	cmd.Execute()
}
