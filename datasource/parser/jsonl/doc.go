// Package jsonl parses JSON Lines data, one Row per line. Schema column names are gjson
// paths (https://github.com/tidwall/gjson) into each line, and absent or null values are nil.
package jsonl
