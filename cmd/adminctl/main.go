package main

import "github.com/contactdesk/contacts-system/cmd/adminctl/cmd"

func main() {
	cmd.Execute()
}
