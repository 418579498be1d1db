// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains shared utilities (diagnostic printing) and the JSON codec
// plugged into echo.
package lib
