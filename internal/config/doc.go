// Package config provides configuration loading, merging, defaulting and
// validation for the go-cred-auth server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the server binary and
// [GetClientConfig] for the terminal client.
package config
