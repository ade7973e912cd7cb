// Package ratelimit provides endpoint middlewares that keep an API client
// within the request rate a server allows, either by rejecting calls with
// ErrLimited or by delaying them.
package ratelimit
