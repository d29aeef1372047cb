// Package peek contains the core components of Peek, a small local dataframe session used
// to fetch, load and preview tabular files. This root package defines the types which are
// employed during regular use of the session (Schema, Row, DataFrame, ...) as well as in
// its extension with new DataSources and Parsers.
package peek
