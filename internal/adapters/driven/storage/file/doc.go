// Package file provides the published menu tree on disk.
//
// Layout below the output root:
//
//	<location>/<year>/<ww>.json          one week
//	<location>/combined/combined.json    every week of the location
//
// Files are replaced atomically so readers never see a partial document.
package file
