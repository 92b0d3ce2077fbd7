// Package config manages user-level settings stored at ~/.overleaf-sync/config.yaml.
// Values can also come from OVERLEAF_SYNC_* environment variables and, in the
// CLI, from flags bound to the same keys. Recognized keys are the template path
// override, the hosting domain, the remote name and a default Overleaf project ID.
package config
