package main

import "ordino/cmd/ordino/cmd"

func main() {
	cmd.Execute()
}
