package main

import "contractbilling/cmd"

func main() {
	cmd.Execute()
}
