package main

import "apontador/cmd"

func main() {
	cmd.Execute()
}
