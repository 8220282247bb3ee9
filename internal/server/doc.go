// Package server wires and runs the application's transport servers.
//
// It binds the HTTP listener (and the optional gRPC health listener) up
// front so that an unavailable port fails startup immediately, then serves
// them under one errgroup and shuts them down together on SIGINT, SIGTERM
// or SIGQUIT.
package server
