// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source to supply a non-zero field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig], which applies defaults for
// unset fields and rejects configurations that are missing the required
// token signing secret or a usable database connection.
package config
