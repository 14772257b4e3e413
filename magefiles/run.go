//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the testbed with the default configuration.
func (Run) Engine() error {
	fmt.Println("Run engine...")
	if _, err := executeCmd("go", withArgs("run", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the testbed with debug logging and the debug hotkeys enabled.
func (Run) Debug() error {
	fmt.Println("Run engine in debug mode...")
	if _, err := executeCmd("go", withArgs("run", ".", "--debug", "--log-level", "debug"), withStream()); err != nil {
		return err
	}
	return nil
}
