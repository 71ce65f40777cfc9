// Package discord is the guild directory client: a thin, read-only view of
// the Discord REST API (user profile, guild list, guild metadata, channel
// list) plus CDN URL derivation and the freshness-window cache in front of
// the live client.
package discord
