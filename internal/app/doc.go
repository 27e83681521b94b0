// Package app wires configuration, logging, loading, computation and
// reporting into one run of the allpairs tool.
package app
