package main

import "github.com/a11yscan/a11yscan/cmd"

func main() {
	cmd.Execute()
}
