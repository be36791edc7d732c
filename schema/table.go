package schema

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Decl declares the layout of one mnemonic for NewTable.
type Decl struct {
	Mnemonic string  // Symbolic name.
	Opcode   uint32  // Value of the opcode bits.
	Fields   []Field // Operand fields, in packing order.
}

// Entry is the validated layout of one mnemonic. Entries are owned by their
// Table and never change.
type Entry struct {
	mnemonic string
	opcode   uint32
	fields   []Field
	table    string
	offsets  []uint
	width    uint
}

// Mnemonic returns the symbolic name.
func (entry *Entry) Mnemonic() string {
	return entry.mnemonic
}

// Opcode returns the value of the opcode bits.
func (entry *Entry) Opcode() uint32 {
	return entry.opcode
}

// Len returns the number of operand fields.
func (entry *Entry) Len() int {
	return len(entry.fields)
}

// Field returns the n'th operand field.
func (entry *Entry) Field(n int) Field {
	return entry.fields[n]
}

// Fields iterates the operand fields in packing order.
func (entry *Entry) Fields() iter.Seq2[int, Field] {
	return slices.All(entry.fields)
}

// Offset returns the bit offset of the n'th field.
func (entry *Entry) Offset(n int) uint {
	return entry.offsets[n]
}

// Width returns the number of bits used by the opcode and all fields.
func (entry *Entry) Width() uint {
	return entry.width
}

// Mask returns the bits of a word covered by the opcode and all fields.
func (entry *Entry) Mask() uint32 {
	return mask(entry.width)
}

// String returns the entry as table.mnemonic(opcode) field...
func (entry *Entry) String() string {
	fields := make([]string, len(entry.fields))
	for n, field := range entry.fields {
		fields[n] = field.String()
	}
	return fmt.Sprintf("%v.%v(0x%02x) %v", entry.table, entry.mnemonic, entry.opcode, strings.Join(fields, " "))
}

// Table is an immutable set of entries sharing one opcode width.
type Table struct {
	Name        string // Instruction set name.
	OpcodeWidth uint   // Opcode bits at the bottom of every word.

	entries    []*Entry
	byOpcode   map[uint32]*Entry
	byMnemonic map[string]*Entry
}

// NewTable validates the entries and computes their field offsets.
func NewTable(name string, opcodeWidth uint, entries ...Decl) (table *Table, err error) {
	if opcodeWidth == 0 || opcodeWidth > WORD_WIDTH {
		err = ErrSchemaOpcodeWidth
		return
	}

	tb := &Table{
		Name:        name,
		OpcodeWidth: opcodeWidth,
		entries:     make([]*Entry, 0, len(entries)),
		byOpcode:    make(map[uint32]*Entry, len(entries)),
		byMnemonic:  make(map[string]*Entry, len(entries)),
	}

	for _, decl := range entries {
		if len(decl.Mnemonic) == 0 {
			err = ErrSchemaMnemonic
			return
		}
		if decl.Opcode&^mask(opcodeWidth) != 0 {
			err = fmt.Errorf("%v: %w", decl.Mnemonic, ErrSchemaOpcodeWidth)
			return
		}
		_, dupOp := tb.byOpcode[decl.Opcode]
		_, dupName := tb.byMnemonic[decl.Mnemonic]
		if dupOp || dupName {
			err = ErrSchemaDuplicate{Mnemonic: decl.Mnemonic, Opcode: decl.Opcode}
			return
		}

		entry := &Entry{
			mnemonic: decl.Mnemonic,
			opcode:   decl.Opcode,
			fields:   slices.Clone(decl.Fields),
			table:    name,
			offsets:  make([]uint, len(decl.Fields)),
		}

		offset := opcodeWidth
		for n, field := range entry.fields {
			if field.Width == 0 {
				err = fmt.Errorf("%v.%v: %w", decl.Mnemonic, field.Name, ErrSchemaFieldWidth)
				return
			}
			entry.offsets[n] = offset
			offset += field.Width
		}
		if offset > WORD_WIDTH {
			err = ErrSchemaOverflow{Mnemonic: decl.Mnemonic, Width: offset}
			return
		}
		entry.width = offset

		tb.entries = append(tb.entries, entry)
		tb.byOpcode[entry.opcode] = entry
		tb.byMnemonic[entry.mnemonic] = entry
	}

	table = tb

	return
}

// MustTable is NewTable for package level declarations; it panics on error.
func MustTable(name string, opcodeWidth uint, entries ...Decl) *Table {
	table, err := NewTable(name, opcodeWidth, entries...)
	if err != nil {
		panic(fmt.Sprintf("schema %v: %v", name, err))
	}
	return table
}

// Lookup returns the entry of a mnemonic.
func (tb *Table) Lookup(mnemonic string) (entry *Entry, ok bool) {
	entry, ok = tb.byMnemonic[mnemonic]
	return
}

// Opcode returns the entry of an opcode value.
func (tb *Table) Opcode(opcode uint32) (entry *Entry, ok bool) {
	entry, ok = tb.byOpcode[opcode]
	return
}

// All iterates the entries in declaration order.
func (tb *Table) All() iter.Seq[*Entry] {
	return slices.Values(tb.entries)
}

// Len returns the number of entries.
func (tb *Table) Len() int {
	return len(tb.entries)
}

// Encode packs the opcode of entry and the raw field values into a word.
// Each value is masked to its field width. The number of values must match
// the number of fields of the entry.
func (tb *Table) Encode(entry *Entry, values ...uint32) (word uint32) {
	if len(values) != len(entry.fields) {
		panic(fmt.Sprintf("schema %v: %v takes %d fields, got %d", tb.Name, entry.mnemonic, len(entry.fields), len(values)))
	}

	word = entry.opcode & mask(tb.OpcodeWidth)
	for n, field := range entry.fields {
		word |= (values[n] & field.Mask()) << entry.offsets[n]
	}

	return
}

// Decode unpacks a word into its entry and raw field values.
// Bits above the entry's last field are ignored.
func (tb *Table) Decode(word uint32) (entry *Entry, values []uint32, err error) {
	opcode := word & mask(tb.OpcodeWidth)

	entry, ok := tb.byOpcode[opcode]
	if !ok {
		err = ErrUnknownOpcode(opcode)
		return
	}

	values = make([]uint32, len(entry.fields))
	for n, field := range entry.fields {
		values[n] = (word >> entry.offsets[n]) & field.Mask()
	}

	return
}
