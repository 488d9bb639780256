// Package migrations embeds the versioned schema files for both supported
// database backends.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
