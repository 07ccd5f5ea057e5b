package main

import "github.com/slffea/femview/cmd"

func main() {
	cmd.Execute()
}
