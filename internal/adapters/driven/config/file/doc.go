// Package file provides a file-based implementation of the ConfigStore
// driven port. Configuration is persisted to the local filesystem as TOML.
package file
