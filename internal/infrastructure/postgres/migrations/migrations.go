// Package migrations embebe los scripts SQL de esquema para aplicarlos
// con golang-migrate al arrancar.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
