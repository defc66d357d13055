// Package symbols removes imports, and optionally annotations, that name
// unwanted Java symbols from source files.
//
// Symbols are selected with doublestar globs written in dotted form:
//
//	org.junit.**            every symbol under org.junit
//	org.junit.*             classes directly in org.junit
//	javax.annotation.Nullable
//
// Only the lexical structure of the file is considered. Comments, string,
// char and text block literals are never modified.
package symbols
