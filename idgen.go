package main

import (
	"strconv"

	"github.com/google/uuid"
)

// idGenerator produces element ids. Every id it returns must be new for the
// lifetime of the session.
type idGenerator func() string

func uuidV7() idGenerator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

func prefixed(prefix string, gen idGenerator) idGenerator {
	return func() string {
		return prefix + gen()
	}
}

// sequential is deterministic and used where stable ids help, such as tests.
func sequential() idGenerator {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

var newElementID = prefixed("element-", uuidV7())
