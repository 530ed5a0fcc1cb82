// Package config loads and writes the bridgegen.yaml project file.
//
// The project file names the two native source roots, the output path
// for the generated Dart file, and the channel naming. Channel naming
// has defaults so a minimal file only needs the roots and the output.
package config
