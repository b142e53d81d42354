package main

import "ecitoyen/cmd/client/cmd"

func main() {
	cmd.Execute()
}
