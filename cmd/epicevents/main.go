// ABOUTME: Entry point for the epicevents CRM command tool
// ABOUTME: All commands live in the cmd subpackage

package main

import "github.com/epicevents/crm/cmd/epicevents/cmd"

func main() {
	cmd.Execute()
}
