// SPDX-License-Identifier: EPL-2.0

// Command trackdeck plays a list of audio tracks on the local sound device.
package main

func main() {
	Execute()
}
