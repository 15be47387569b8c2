// Package migrations embebe los scripts SQL de goose para que los binarios no dependan del disco.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
