package main

import "github.com/Bitlatte/petroweb/cmd"

func main() {
	cmd.Execute()
}
