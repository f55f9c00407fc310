package main

import "github.com/kasuboski/mediastat/cmd"

func main() {
	cmd.Execute()
}
