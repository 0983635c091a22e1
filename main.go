package main

import "Keystone/cmd"

func main() {
	cmd.Execute()
}
