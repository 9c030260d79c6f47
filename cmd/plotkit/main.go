package main

import "github.com/zonksoft/plotkit/cmd/plotkit/cmd"

func main() {
	cmd.Execute()
}
