package main

import "github.com/a1henu/mini-lisp/cmd/wisp/cmd"

func main() {
	cmd.Execute()
}
