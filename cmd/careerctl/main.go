// Command careerctl manages the CareerLaunch store from a terminal.
package main

func main() {
	execute()
}
