package main

import "github.com/Rohit242003/timesheet-dashboard/cmd"

func main() {
	cmd.Execute()
}
