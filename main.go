package main

import "deepcheck_api/cmd"

func main() {
	cmd.Execute()
}
