//go:build !chessdebug

package common

const debugChecks = false
