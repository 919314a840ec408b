//go:build !debug

package ecs

const strictInvariants = false
