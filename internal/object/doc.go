// Package object provides an insertion-ordered nested mapping used for ESLint
// configuration objects and package.json documents. Key order is preserved
// through decoding, merging, and encoding so generated files read the way a
// person would write them.
package object
