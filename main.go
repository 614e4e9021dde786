package main

import "venues-server/cmd"

func main() {
	cmd.Execute()
}
