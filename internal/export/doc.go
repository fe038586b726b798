// Package export turns ASCII art into downloadable artifacts.
//
// Three formats are supported, each with a fixed file name:
//
//   - [Text]: the art bytes unchanged, written as ascii.txt
//   - [PNG]: the art drawn in a 10px monospace face, written as ascii.png
//   - [SVG]: the same layout as vector text, written as ascii.svg
//
// Writing is delegated to a [FileWriter] so callers decide where the
// artifact lands. An [Exporter] ties the two together and is what the CLI
// and the terminal viewer use.
package export
