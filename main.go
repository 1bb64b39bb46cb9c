package main

import "awardlog/cmd"

func main() {
	cmd.Execute()
}
