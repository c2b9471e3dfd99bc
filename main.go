package main

import "github.com/alexiusacademia/framesec/cmd"

func main() {
	cmd.Execute()
}
