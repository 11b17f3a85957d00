// Package launcher builds and executes the legacy application launch shim:
// chdir into the application directory, then replace the current process
// with the environment-manager invocation. No supervision, no retries.
package launcher
