// Package engine provides a lightweight wrapper around the SQLite
// library, exposing the narrow prepare/bind/step/column call surface
// the rest of the project is built on.
//
//   - https://www.sqlite.org/cintro.html
//   - https://www.sqlite.org/c3ref/intro.html
package engine
