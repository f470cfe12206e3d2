package main

import "github.com/inovacc/gitextra/cmd"

func main() {
	cmd.Execute()
}
