//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Regenerates mocks and builds the testbed binary into bin/.
func (Build) Engine() error {
	if err := goGenerate(); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/leek", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go mod tidy and go generate.
func (Build) Generate() error {
	return goGenerate()
}
