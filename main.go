package main

import "ipam-importer/cmd"

func main() {
	cmd.Execute()
}
