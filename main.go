package main

import "army-catalog/cmd"

func main() {
	cmd.Execute()
}
