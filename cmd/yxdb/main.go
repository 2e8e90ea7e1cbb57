package main

import "github.com/ssargent/yxdb/cmd/yxdb/cmd"

func main() {
	cmd.Execute()
}
