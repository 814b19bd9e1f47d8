// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/prebuilt/cmd/prebuilt/cmd"
)

func main() {
	cmd.Execute()
}
