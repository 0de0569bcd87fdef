package main

import "github.com/rizalfh/payment-sandbox/cmd"

func main() {
	cmd.Execute()
}
