package main

import "github.com/viadee/roboscope/cmd"

func main() {
	cmd.Execute()
}
