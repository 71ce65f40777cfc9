// Package server is the HTTP layer: routing, session auth, OAuth login with
// Discord, and the server-rendered dashboard pages.
package server
