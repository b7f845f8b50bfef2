package main

import "github.com/jdlms/operadoras-dashboard/cmd"

func main() {
	cmd.Execute()
}
