// Package argv marshals the raw OS command line into a portable slice of
// UTF-8 tokens. Tokenization is delegated to the platform's own rules rather
// than reimplemented, so quoting and whitespace behave exactly as the shell
// and launcher conventions of the host OS dictate.
package argv
