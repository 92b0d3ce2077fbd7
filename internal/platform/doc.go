// Package platform provides cross-platform filesystem helpers: resolving
// user-supplied paths to absolute, symlink-free form, locating the running
// executable, and setting permissions (a no-op on Windows).
package platform
