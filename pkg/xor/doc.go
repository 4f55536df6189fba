/*
Package xor applies XOR screening to byte payloads.

This is NOT encryption. XOR screening is trivially reversible and only hides plain text from a casual
look at a binary or a packet capture.

# How it works:

Each byte passing through Screen, Reader or Writer is XORed with the current key byte.
The key is used like a ring buffer: after the last key byte the first one is used again.
A one byte key, like DefaultKey, XORs every byte with the same value.

An optional offset starts the screen at a key position other than the first.
The same key and offset must be used to reverse the process.
*/
package xor
