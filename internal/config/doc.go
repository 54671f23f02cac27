// Package config provides configuration loading, merging, and validation
// facilities for the webhook receiver and the device sync daemon.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win; later sources fill fields earlier ones left
// unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]; both binaries share one
// configuration surface since they run on the same machine and consult the
// same registry and status files.
package config
