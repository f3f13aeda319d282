package main

import "github.com/gopfly/gopfly/cmd"

func main() {
	cmd.Execute()
}
