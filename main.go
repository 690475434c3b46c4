package main

import "github.com/iksnae/motec-session/cmd"

func main() {
	cmd.Execute()
}
