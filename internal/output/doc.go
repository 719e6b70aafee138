// Package output writes exported event data as newline-delimited raw text.
//
// Earlier versions of these tools described the output file as JSON in
// their help text while actually writing one raw original_data value per
// line. The line format is kept, and the CLI help now documents it.
package output
