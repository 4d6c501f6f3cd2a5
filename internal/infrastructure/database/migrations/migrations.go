// Package migrations はPostgreSQLスキーマのマイグレーションを埋め込みます
package migrations

import "embed"

// FS はマイグレーションSQLファイルを保持します
//
//go:embed *.sql
var FS embed.FS
