// Package formats provides parsers for the plain-text asset files the demos
// load at startup: Wavefront OBJ meshes, MTL-style material sidecars and
// comma-separated Bezier control-point lists.
//
// Every Load function distinguishes a file that could not be opened from a
// file that was read but is malformed; see Status.
package formats
