// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command backfill fills the missing Hindi and Tamil variants of every stored
// author and book.
//
// Usage:
//
//	backfill [--dry-run] [--entity author|book|all]
//
// It reads the same environment as the API server (DATABASE_URL, REDIS_URL,
// TRANSLATE_*). Migrations are not run; the schema must already exist.
package main

func main() {
	Execute()
}
