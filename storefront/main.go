package main

import "tiffin-finder/storefront/cmd"

func main() {
	cmd.Execute()
}
