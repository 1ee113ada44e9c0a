package main

import "github.com/ianfixes/Illuminator/cmd"

func main() {
	cmd.Execute()
}
