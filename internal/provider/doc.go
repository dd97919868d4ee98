// Package provider constructs the remote collaborators: the Anthropic client
// and the configured task service backend.
package provider
