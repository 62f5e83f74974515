package main

import "github.com/mouse-blink/luarename/cmd"

func main() {
	cmd.Execute()
}
