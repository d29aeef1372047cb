// Package file provides a DataSource which reads data from files on disk, matched by a glob
// or named by a file:// URI. Files are assigned to workers in their entirety, in lexical order,
// so it is favourable if individual files represent roughly equal-sized divisions of data.
package file
