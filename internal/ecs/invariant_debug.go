//go:build debug

package ecs

const strictInvariants = true
