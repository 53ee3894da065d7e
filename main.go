package main

import "github.com/Luis23345432/Ingesta-Hotel2/cmd"

func main() {
	cmd.Execute()
}
