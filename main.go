package main

import "github.com/tayloree/phonecmp/cmd"

func main() {
	cmd.Execute()
}
