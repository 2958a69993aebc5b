// Package confloader loads buildmeta configuration with koanf.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. Values already present in the target struct (defaults)
//  2. A YAML configuration file
//  3. Environment variables
//  4. Command-line flags, passed as a map
//
// Environment variables use the BUILDMETA_ prefix. A double underscore
// separates nesting levels so that single underscores survive in key
// names: BUILDMETA_FLAGS__CACHE_FILE sets flags.cache_file.
package confloader
