//go:build mcverify

package mc

const verifyByDefault = true
