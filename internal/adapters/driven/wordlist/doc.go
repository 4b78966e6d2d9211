// Package wordlist loads the answer and guess corpora, either from text files
// with one word per line or from the lists compiled into the binary.
package wordlist
