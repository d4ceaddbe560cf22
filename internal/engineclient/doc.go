// Package engineclient pushes compiled workflow graphs to a running
// automation engine over socket.io. Deployment is optional: the CLI only
// constructs a client when a deploy URL is configured.
package engineclient
