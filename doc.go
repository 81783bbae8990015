/*
Package lexicon provides an in-memory word dictionary backed by a prefix
tree. It supports exact and prefix lookup, sorted enumeration, bulk
loading from wordlist files, near-miss suggestions by substitution
distance and wildcard pattern matching.
*/
package lexicon
