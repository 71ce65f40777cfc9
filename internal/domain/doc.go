// Package domain holds the core types and repository interfaces of guildboard.
// It has no I/O of its own; persistence lives in the database package and
// upstream access in the discord package.
package domain
