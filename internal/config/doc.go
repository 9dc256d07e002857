// Package config handles configuration loading and merging for txtclean.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (-marker, -skip, -sep, -format, -no-color, ...)
//  2. Environment variables (TXTCLEAN_MARKER, TXTCLEAN_SEPARATOR, NO_COLOR, ...)
//  3. YAML config file (.txtclean.yaml in the working directory, or
//     txtclean/config.yaml under the user config directory, or -config)
//  4. Hardcoded defaults
//
// # Config File
//
//	separator: semicolon
//	include_header: true
//	decimal_comma_to_dot: true
//	heuristics:
//	  marker: "[step]"
//	  min_numeric_ratio: 0.6
//	  width_tolerance: 1
//	  block_length: 5
//	  indicators: [":", segment, started, version, entry, log, calibration]
//
// Absent keys, and heuristics values of 0, keep their defaults.
//
// # Environment Variables
//
//   - TXTCLEAN_MARKER, TXTCLEAN_SEPARATOR, TXTCLEAN_FORMAT, TXTCLEAN_SKIP
//   - NO_COLOR: any non-empty value disables colors
//   - TXTCLEAN_NO_COLOR: "true" or "false"
//   - TXTCLEAN_DEBUG: enables debug output
package config
