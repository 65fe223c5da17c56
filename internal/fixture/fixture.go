// Package fixture holds configuration types shared by tests of the binders
// and of the code generator. Package fixturebind holds the binding code
// generated for its roots.
package fixture

import (
	"time"
)

//go:generate go run confbind/cmd/confbind gen --manifest fixturebind/confbind.yaml

// Level is a named scalar type.
type Level string

// Millis is a named integer type.
type Millis int64

// Config exercises every node kind.
type Config struct {
	Name    string        `default:"app" doc:"app.name"`
	Port    int           `default:"8080" doc:"app.port"`
	Host    string        `default:"localhost"`
	Timeout float64       `default:"${app.base.timeout}"`
	Debug   *bool         `doc:"app.debug"`
	Ratio   *float32      `default:"${ratio.fallback:0.5}"`
	Level   Level         `default:"info"`
	Tags    []string      `default:"a,b"`
	Weights []uint16      `config:"weights"`
	Retry   time.Duration `default:"1s"`
	Grace   Millis        `default:"250"`
	Dir     string        `default:"${app.base.root:/srv}/data"`
	Secret  string        `config:"-"`

	Base    Base
	TLS     *TLS   `config:"tls"`
	Limits  Limits `config:",flatten"`
	Servers map[string]*Server
	Pool    []Backend `config:"backends"`
	Labels  map[string]string
	Aliases map[string][]Level
	Mirrors []*Backend
}

// Base holds settings other defaults refer to.
type Base struct {
	Timeout float64 `default:"30.0"`
	Root    string
}

// TLS is allocated only through a pointer field.
type TLS struct {
	Enabled bool   `default:"true"`
	Cert    string `config:"cert-file"`
	MinVer  *uint8 `config:"min-version" default:"12"`
}

// Limits is flattened into Config.
type Limits struct {
	MaxConns int64 `default:"100"`
	Burst    *int32
	Rate     float64 `default:"${limits.fallback-rate:1.5}"`
}

// Server is a map element.
type Server struct {
	Host    string `default:"${app.host}"`
	Port    uint16 `default:"80"`
	Weight  *int
	Backups []Backend
}

// Backend is a slice element.
type Backend struct {
	URL     string `config:"url"`
	Timeout Millis
	Enabled bool `default:"true"`
}

// Small is the schema of the port and host scenario.
type Small struct {
	Port int    `default:"8080"`
	Host string `default:"localhost"`
}

// Chained is the schema of the chained default scenario.
type Chained struct {
	Timeout float64 `default:"${base.timeout}"`
	Base    Base
}

// Embedded promotes the fields of an unexported embedded struct.
type Embedded struct {
	common
	Name string `default:"svc"`
}

type common struct {
	Port    int `default:"8080"`
	Verbose *bool
}

// Cyclic holds defaults that refer to each other.
type Cyclic struct {
	X string `default:"${loop.y}"`
	Y string `default:"${loop.x}"`
}
