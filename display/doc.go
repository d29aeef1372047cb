// Package display renders collected Rows and Schemas as text, in the
// layout used by Spark's show() and printSchema().
package display
