package model

import (
	"fmt"
	"sort"
)

// ModuleID identifies a loaded module (assembly, shared object, package
// binary) in the debuggee.
type ModuleID string

// MethodID identifies one compiled body of a method. Version grows each time
// the method body is recompiled.
type MethodID struct {
	Module  ModuleID `yaml:"module"`
	Token   uint32   `yaml:"token"`
	Version int      `yaml:"version"`
}

func (id MethodID) String() string {
	return fmt.Sprintf("%s:0x%08x:v%d", id.Module, id.Token, id.Version)
}

// SameMethod reports whether both identities name the same method,
// regardless of version.
func (id MethodID) SameMethod(other MethodID) bool {
	return id.Module == other.Module && id.Token == other.Token
}

// Compare orders identities by module, token and version.
func (id MethodID) Compare(other MethodID) int {
	switch {
	case id.Module != other.Module:
		if id.Module < other.Module {
			return -1
		}

		return 1
	case id.Token != other.Token:
		if id.Token < other.Token {
			return -1
		}

		return 1
	case id.Version != other.Version:
		if id.Version < other.Version {
			return -1
		}

		return 1
	}

	return 0
}

// InstructionID names one potential pause point: an instruction offset within
// a specific method body.
type InstructionID struct {
	Method MethodID `yaml:"method"`
	Offset int      `yaml:"offset"`
}

func (id InstructionID) String() string {
	return fmt.Sprintf("%s+0x%x", id.Method, id.Offset)
}

// TokenSet is a set of method tokens, used for the methods recompiled by an
// edit.
type TokenSet map[uint32]struct{}

// NewTokenSet builds a set from the given tokens.
func NewTokenSet(tokens ...uint32) TokenSet {
	set := make(TokenSet, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}

	return set
}

// Contains reports whether token is in the set.
func (s TokenSet) Contains(token uint32) bool {
	_, ok := s[token]
	return ok
}

// Sorted returns the tokens in ascending order.
func (s TokenSet) Sorted() []uint32 {
	tokens := make([]uint32, 0, len(s))
	for token := range s {
		tokens = append(tokens, token)
	}

	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })

	return tokens
}
