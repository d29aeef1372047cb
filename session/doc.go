// Package session provides a local, in-process Session for loading tabular files as
// DataFrames and running actions (collect, count, show) against them. A process normally
// uses a single Session, obtained through Builder().GetOrCreate().
package session
