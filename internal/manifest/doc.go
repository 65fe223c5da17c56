// Package manifest loads the YAML files that drive code generation.
//
// Example:
//
//	version: "1"
//	package: configbind
//	package_path: example.com/app/configbind
//	output: .
//	load:
//	  - example.com/app/config
//	roots:
//	  - type: example.com/app/config.Server
//	    prefix: server
package manifest
