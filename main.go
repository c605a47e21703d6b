package main

import "github.com/YevhLyt95/next-dashboard/cmd"

func main() {
	cmd.Execute()
}
