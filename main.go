package main

import "github.com/Quang-Ng-Duong/DNS-Record/cmd"

func main() {
	cmd.Execute()
}
