// Package configs resolves veil's configuration.
//
// Configuration comes from two places and is resolved once at startup:
//
//   - Environment: the EDITOR variable, parsed with caarlos0/env. When it is
//     unset or blank the editor falls back to DefaultEditor.
//   - Flags: the cmd layer combines flags with the Environment into a
//     Config, which is validated before any external program runs.
//
// There is no configuration file. The resolved Config is passed
// explicitly to the workflows; nothing below the cmd layer reads the
// environment.
package configs
