// Package schema is the word layout engine shared by the instruction sets.
//
// A Table is built once from a Decl per mnemonic: its opcode and the ordered
// list of operand fields packed above it. Fields are packed least significant bit first,
// starting immediately after the opcode bits, with no padding between them.
// Encode and Decode both read their bit offsets from the same precomputed
// Entry, so the layout has a single source of truth. Entries are read only;
// their fields are handed out by value.
//
// Range is the immediate model: it checks that a value fits a signed or
// unsigned field, and converts between values and their field bit patterns.
package schema
