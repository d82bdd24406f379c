// Package main provides the fournil CLI.
//
//	fournil serve        # start the HTTP server
//	fournil seed         # seed the starter catalogue
//	fournil db:indexes   # create MongoDB indexes
//	fournil queue:work   # run a standalone queue worker
//	fournil route:list   # list API routes
package main
