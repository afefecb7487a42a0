package main

import "github.com/updownlabs/updown-resolver/cmd"

func main() {
	cmd.Execute()
}
