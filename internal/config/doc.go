// SPDX-License-Identifier: EPL-2.0

// Package config loads the TOML configuration shared by the image and audio
// commands. Values not present in the file keep their defaults.
package config
