package main

import "github.com/josephgoksu/PlanWing/cmd"

func main() {
	cmd.Execute()
}
