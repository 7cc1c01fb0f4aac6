// Package adapters implements server.WebServer for Gin, Echo and Fiber.
package adapters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/toyz/navs13/internal/server"
)

// Engine names accepted by New
const (
	EngineGin   = "gin"
	EngineEcho  = "echo"
	EngineFiber = "fiber"
)

var constructors = map[string]func() server.WebServer{
	EngineGin:   func() server.WebServer { return NewDefaultGinAdapter() },
	EngineEcho:  func() server.WebServer { return NewDefaultEchoAdapter() },
	EngineFiber: func() server.WebServer { return NewDefaultFiberAdapter() },
}

// New returns the default adapter for engine (case insensitive)
func New(engine string) (server.WebServer, error) {
	constructor, ok := constructors[strings.ToLower(engine)]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q, expected one of %s", engine, strings.Join(Engines(), ", "))
	}
	return constructor(), nil
}

// Engines lists the supported engine names, sorted
func Engines() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether engine names a known adapter
func Supported(engine string) bool {
	_, ok := constructors[strings.ToLower(engine)]
	return ok
}
