/*
Copyright © 2025 Konstantin Shmirko <physicist2018@vk.com>
*/
package main

import "github.com/peplxx/probability-explorer/cmd/probexplorer/commands"

func main() {
	commands.Execute()
}
