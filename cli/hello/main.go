// Command hello prints the canonical greeting on its own line and exits 0.
// It is the reference producer for helloctl check.
package main

import "fmt"

func main() {
	fmt.Println("Hello World")
}
