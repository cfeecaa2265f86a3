package main

import "csvprobe/cmd"

func main() {
	cmd.Execute()
}
