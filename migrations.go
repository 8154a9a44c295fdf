// Package curvelab holds assets shared by the curvelab binaries.
package curvelab

import "embed"

// Migrations contains the goose SQL migrations for the scenario store.
//
//go:embed migrations/*.sql
var Migrations embed.FS
